package ui

import (
	"image/color"

	"Sketchpad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing region. It turns pointer events into calls on
// the canvas surface and repaints by replaying its strokes.
type BoardWidget struct {
	widget.BaseWidget
	canvas  *state.Canvas
	pointer state.PointerHandler
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Canvas) *BoardWidget {
	b := &BoardWidget{canvas: c, pointer: c}
	c.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Canvas() *state.Canvas { return b.canvas }

func (b *BoardWidget) SetColor(c color.Color) { b.canvas.SetColor(state.FromColor(c)) }

func (b *BoardWidget) SetThickness(n int) { b.canvas.SetThickness(n) }

func (b *BoardWidget) Clear() { b.canvas.Clear() }

func toPoint(p fyne.Position) state.Point { return state.Point{X: p.X, Y: p.Y} }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer.OnPointerDown(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer.OnPointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pointer.OnPointerDrag(toPoint(e.Position))
}

// DragEnd can arrive without a MouseUp when the pointer leaves the window.
func (b *BoardWidget) DragEnd() {
	b.pointer.OnPointerUp()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b, background: canvas.NewRectangle(color.White)}
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	p := &linePainter{objects: []fyne.CanvasObject{r.background}}
	r.board.canvas.Render(p)
	r.objects = p.objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

// linePainter collects canvas objects for each path it is asked to draw.
type linePainter struct {
	color   color.Color
	width   float32
	objects []fyne.CanvasObject
}

var _ state.Painter = (*linePainter)(nil)

func (p *linePainter) SetColor(c state.RGB) { p.color = c }

func (p *linePainter) SetThickness(n int) { p.width = float32(n) }

func (p *linePainter) DrawPath(points []state.Point) {
	switch len(points) {
	case 0:
		return
	case 1:
		// a click without drag leaves a dot
		r := p.width / 2
		dot := canvas.NewCircle(p.color)
		dot.Position1 = fyne.NewPos(points[0].X-r, points[0].Y-r)
		dot.Position2 = fyne.NewPos(points[0].X+r, points[0].Y+r)
		p.objects = append(p.objects, dot)
		return
	}
	for i := 1; i < len(points); i++ {
		seg := canvas.NewLine(p.color)
		seg.StrokeWidth = p.width
		seg.Position1 = fyne.NewPos(points[i-1].X, points[i-1].Y)
		seg.Position2 = fyne.NewPos(points[i].X, points[i].Y)
		p.objects = append(p.objects, seg)
	}
}

// snapshot builds a standalone view of strokes, used for image export.
func snapshot(strokes []state.Stroke, size fyne.Size) fyne.CanvasObject {
	bg := canvas.NewRectangle(color.White)
	bg.Resize(size)
	p := &linePainter{objects: []fyne.CanvasObject{bg}}
	state.RenderStrokes(p, strokes)
	c := container.NewWithoutLayout(p.objects...)
	c.Resize(size)
	return c
}
