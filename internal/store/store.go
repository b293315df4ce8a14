// Package store writes the stroke list to disk in an internal binary format.
// There is no loader; the format is opaque and carries no version.
package store

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"Sketchpad/internal/state"
)

// Magic prefixes every saved drawing.
const Magic = "SKPD"

type record struct {
	ID        string
	Seq       uint64
	Points    []state.Point
	Color     state.RGB
	Thickness int
}

// Write encodes strokes to w in insertion order.
func Write(w io.Writer, strokes []state.Stroke) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Magic); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	records := make([]record, len(strokes))
	for i, s := range strokes {
		records[i] = record{ID: s.ID, Seq: s.Seq, Points: s.Points, Color: s.Color, Thickness: s.Thickness}
	}
	if err := gob.NewEncoder(bw).Encode(records); err != nil {
		return fmt.Errorf("encode strokes: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Save writes strokes to path. The drawing goes to a temporary file in the
// same directory first and is renamed over path only once fully written, so
// a failed save leaves any previous file intact.
func Save(path string, strokes []state.Stroke) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	if err := Write(f, strokes); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
