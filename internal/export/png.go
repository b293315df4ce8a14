package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// PNG encodes a captured canvas image to path.
func PNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export png %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export png %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("export png %s: %w", path, err)
	}
	return nil
}
