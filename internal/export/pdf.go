package export

import (
	"fmt"

	"Sketchpad/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// mmPerPx maps canvas pixels (96 dpi) onto PDF millimetres.
const mmPerPx = 25.4 / 96

// margin around the drawing, in canvas pixels.
const margin = 20

// PDF writes the strokes to a single-page PDF sized to fit the drawing.
func PDF(path string, strokes []state.Stroke) error {
	b := state.Bounds(strokes)
	if b.Empty() {
		b = state.Rect{Width: 1, Height: 1}
	}
	w := float64(b.Width+2*margin) * mmPerPx
	h := float64(b.Height+2*margin) * mmPerPx
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	ox, oy := float64(b.X-margin), float64(b.Y-margin)
	for _, st := range strokes {
		p.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetFillColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetLineWidth(float64(st.Thickness) * mmPerPx)
		if len(st.Points) == 1 {
			pt := st.Points[0]
			r := float64(st.Thickness) * mmPerPx / 2
			p.Circle((float64(pt.X)-ox)*mmPerPx, (float64(pt.Y)-oy)*mmPerPx, r, "F")
			continue
		}
		for i := 1; i < len(st.Points); i++ {
			p.Line(
				(float64(st.Points[i-1].X)-ox)*mmPerPx, (float64(st.Points[i-1].Y)-oy)*mmPerPx,
				(float64(st.Points[i].X)-ox)*mmPerPx, (float64(st.Points[i].Y)-oy)*mmPerPx,
			)
		}
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	return nil
}
