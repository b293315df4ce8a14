package ui

import (
	"image/color"
	"strconv"

	"Sketchpad/internal/config"
	"Sketchpad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette ends in white, which paints over earlier strokes.
var palette = []state.RGB{
	state.Black,
	{R: 255},
	{G: 160},
	{B: 255},
	{R: 255, G: 200},
	state.White,
}

// swatch is a round one-tap pen color button.
type swatch struct {
	widget.BaseWidget
	color state.RGB
	pick  func(state.RGB)
}

func newSwatch(c state.RGB, pick func(state.RGB)) *swatch {
	s := &swatch{color: c, pick: pick}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(s.color)
	dot.StrokeColor = color.Gray{Y: 150}
	dot.StrokeWidth = 1
	return &swatchRenderer{dot: dot}
}

func (s *swatch) Tapped(*fyne.PointEvent) {
	if s.pick != nil {
		s.pick(s.color)
	}
}

type swatchRenderer struct {
	dot *canvas.Circle
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	d := min(size.Width, size.Height)
	r.dot.Resize(fyne.NewSize(d, d))
	r.dot.Move(fyne.NewPos((size.Width-d)/2, (size.Height-d)/2))
}

func (r *swatchRenderer) MinSize() fyne.Size           { return fyne.NewSize(22, 22) }
func (r *swatchRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.dot} }
func (r *swatchRenderer) Refresh()                     { r.dot.Refresh() }
func (r *swatchRenderer) Destroy()                     {}

func thicknessOptions() []string {
	opts := make([]string, 0, config.MaxThickness-config.MinThickness+1)
	for n := config.MinThickness; n <= config.MaxThickness; n++ {
		opts = append(opts, strconv.Itoa(n))
	}
	return opts
}

// newToolbar builds the control strip: color chooser, palette, clear, save,
// exports and the pen size selector.
func (a *App) newToolbar() fyne.CanvasObject {
	chooseColor := widget.NewButtonWithIcon("Choose Color", theme.ColorPaletteIcon(), a.chooseColor)

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newSwatch(c, a.pickColor))
	}

	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), a.board.Clear)
	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		a.askPath(".skpd", a.SaveDrawing)
	})
	exportPDF := widget.NewButton("Export PDF", func() {
		a.askPath(".pdf", a.ExportPDF)
	})
	exportPNG := widget.NewButton("Export PNG", func() {
		a.askPath(".png", a.ExportPNG)
	})

	a.thickness = widget.NewSelect(thicknessOptions(), func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		a.board.SetThickness(n)
	})
	a.thickness.SetSelected(strconv.Itoa(a.board.Canvas().Pen().Thickness))

	return container.NewHBox(
		chooseColor,
		swatches,
		widget.NewSeparator(),
		clearBtn,
		save,
		exportPDF,
		exportPNG,
		widget.NewSeparator(),
		widget.NewLabel("Pen Size:"),
		a.thickness,
		layout.NewSpacer(),
	)
}

func (a *App) pickColor(c state.RGB) {
	a.board.Canvas().SetColor(c)
	a.setStatus("Pen color " + c.Hex())
}

func (a *App) chooseColor() {
	picker := dialog.NewColorPicker("Choose Color", "Pen color for the next stroke", func(c color.Color) {
		a.pickColor(state.FromColor(c))
	}, a.win)
	picker.Advanced = true
	picker.SetColor(a.board.Canvas().Pen().Color)
	picker.Show()
}
