package state

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Union returns the smallest rect covering both a and b.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// StrokeBounds is the bounding box of a stroke's points, padded by half its
// thickness so the painted line fits inside.
func StrokeBounds(s Stroke) Rect {
	if len(s.Points) == 0 {
		return Rect{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	pad := float32(max(s.Thickness, 1)) / 2
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// Bounds covers every stroke in the list.
func Bounds(strokes []Stroke) Rect {
	var r Rect
	for _, s := range strokes {
		r = r.Union(StrokeBounds(s))
	}
	return r
}
