package state

import (
	"log"

	"github.com/google/uuid"
)

// Painter is the drawing target handed to Render.
type Painter interface {
	SetColor(c RGB)
	SetThickness(n int)
	DrawPath(points []Point)
}

// PointerHandler receives pointer events from whatever host window is used.
type PointerHandler interface {
	OnPointerDown(p Point)
	OnPointerDrag(p Point)
	OnPointerUp()
}

var _ PointerHandler = (*Canvas)(nil)

// Canvas owns the stroke list, the in-progress stroke and the current pen.
// It is not safe for concurrent use; all calls must come from the UI
// event goroutine.
type Canvas struct {
	pen     DrawingState
	strokes []Stroke
	current *Stroke
	clock   Clock

	// OnChange is called whenever a redraw is needed.
	OnChange func()
}

// NewCanvas creates an empty canvas with the given pen.
func NewCanvas(pen DrawingState) *Canvas {
	return &Canvas{pen: pen}
}

func (c *Canvas) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// BeginStroke starts a stroke at p with the current pen. A stroke still in
// progress (its pointer-up was lost) is finalized first.
func (c *Canvas) BeginStroke(p Point) {
	if c.current != nil {
		log.Printf("[CANVAS] stroke %s still open on pointer-down, finalizing", c.current.ID)
		c.commit()
	}
	c.current = &Stroke{
		ID:        uuid.NewString(),
		Points:    []Point{p},
		Color:     c.pen.Color,
		Thickness: c.pen.Thickness,
	}
	c.changed()
}

// ExtendStroke appends p as a straight segment from the previous point.
// It does nothing when no stroke is in progress.
func (c *Canvas) ExtendStroke(p Point) {
	if c.current == nil {
		return
	}
	c.current.Points = append(c.current.Points, p)
	c.changed()
}

// EndStroke moves the in-progress stroke into the stroke list.
func (c *Canvas) EndStroke() {
	if c.current == nil {
		return
	}
	c.commit()
	c.changed()
}

// AbandonStroke drops the in-progress stroke without committing it.
func (c *Canvas) AbandonStroke() {
	if c.current == nil {
		return
	}
	c.current = nil
	c.changed()
}

func (c *Canvas) commit() {
	s := *c.current
	s.Seq = c.clock.Tick()
	c.strokes = append(c.strokes, s)
	c.current = nil
}

// Clear empties the stroke list. The pen and any stroke still being drawn
// are left alone.
func (c *Canvas) Clear() {
	c.strokes = nil
	c.changed()
}

func (c *Canvas) SetColor(col RGB) { c.pen.Color = col }

func (c *Canvas) SetThickness(n int) { c.pen.Thickness = n }

func (c *Canvas) Pen() DrawingState { return c.pen }

func (c *Canvas) InProgress() bool { return c.current != nil }

func (c *Canvas) Len() int { return len(c.strokes) }

// Strokes returns a copy of the finalized strokes in insertion order.
func (c *Canvas) Strokes() []Stroke {
	out := make([]Stroke, len(c.strokes))
	for i, s := range c.strokes {
		out[i] = s.clone()
	}
	return out
}

// Render draws every finalized stroke in insertion order, then the
// in-progress stroke using the live pen.
func (c *Canvas) Render(p Painter) {
	RenderStrokes(p, c.strokes)
	if c.current != nil {
		p.SetColor(c.pen.Color)
		p.SetThickness(c.pen.Thickness)
		p.DrawPath(c.current.Points)
	}
}

// RenderStrokes replays strokes onto p with their stored pen.
func RenderStrokes(p Painter, strokes []Stroke) {
	for _, s := range strokes {
		p.SetColor(s.Color)
		p.SetThickness(s.Thickness)
		p.DrawPath(s.Points)
	}
}

func (c *Canvas) OnPointerDown(p Point) { c.BeginStroke(p) }
func (c *Canvas) OnPointerDrag(p Point) { c.ExtendStroke(p) }
func (c *Canvas) OnPointerUp()          { c.EndStroke() }
