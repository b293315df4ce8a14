package state

import (
	"fmt"
	"image/color"
	"strings"
)

// RGB is a stroke color. Alpha is always opaque.
type RGB struct{ R, G, B uint8 }

var (
	Black = RGB{}
	White = RGB{R: 255, G: 255, B: 255}
)

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor drops alpha and converts any color.Color to RGB.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	var c RGB
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return c, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

type Point struct{ X, Y float32 }

// Stroke is one continuous freehand line. Color and Thickness are fixed
// when the stroke starts.
type Stroke struct {
	ID        string
	Seq       uint64
	Points    []Point
	Color     RGB
	Thickness int
}

func (s Stroke) clone() Stroke {
	s.Points = append([]Point(nil), s.Points...)
	return s
}

// DrawingState applies to the next stroke started, never to existing ones.
type DrawingState struct {
	Color     RGB
	Thickness int
}
