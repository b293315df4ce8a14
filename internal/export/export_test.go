package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"Sketchpad/internal/state"
)

func TestPDF(t *testing.T) {
	strokes := []state.Stroke{
		{Points: []state.Point{{X: 10, Y: 10}, {X: 200, Y: 40}}, Color: state.RGB{R: 255}, Thickness: 3},
		{Points: []state.Point{{X: 50, Y: 50}}, Color: state.Black, Thickness: 5},
	}
	path := filepath.Join(t.TempDir(), "drawing.pdf")
	if err := PDF(path, strokes); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF")
	}
}

func TestPDFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := PDF(path, nil); err != nil {
		t.Fatalf("PDF: %v", err)
	}
}

func TestPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "drawing.png")
	if err := PNG(path, img); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := got.At(1, 1).RGBA(); r != 0xffff {
		t.Errorf("pixel lost in export")
	}
}

func TestPNGUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "drawing.png")
	err := PNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
