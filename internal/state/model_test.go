package state

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#000000", Black, false},
		{"#ff0000", RGB{R: 255}, false},
		{"00FF80", RGB{G: 255, B: 128}, false},
		{" #ffffff ", White, false},
		{"#fff", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorConversions(t *testing.T) {
	c := RGB{R: 12, G: 200, B: 7}
	if got := FromColor(c); got != c {
		t.Errorf("FromColor(RGB) = %+v", got)
	}
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != (RGB{1, 2, 3}) {
		t.Errorf("FromColor(NRGBA) = %+v", got)
	}
	if got := c.Hex(); got != "#0cc807" {
		t.Errorf("Hex = %s", got)
	}
	if _, _, _, a := c.RGBA(); a != 0xffff {
		t.Errorf("alpha = %x, want opaque", a)
	}
}

func TestBounds(t *testing.T) {
	strokes := []Stroke{
		{Points: []Point{{10, 10}, {20, 30}}, Thickness: 2},
		{Points: []Point{{50, 5}}, Thickness: 4},
	}
	got := Bounds(strokes)
	want := Rect{X: 9, Y: 3, Width: 43, Height: 28}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
	if !Bounds(nil).Empty() {
		t.Errorf("bounds of no strokes should be empty")
	}
}

func TestClock(t *testing.T) {
	var c Clock
	if c.Tick() != 1 || c.Tick() != 2 || c.Tick() != 3 {
		t.Errorf("clock out of sequence")
	}
}
