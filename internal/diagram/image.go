package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/isostatics/isoframe/internal/frame"
)

// node coordinates of the frame in meters. A sits left of B at -Lab,
// B is the origin, C at Lbc, D above C at Hcd.
func nodes(p frame.StructureParameters) (a, b, c, d plotter.XY) {
	a = plotter.XY{X: -p.Lab, Y: 0}
	b = plotter.XY{X: 0, Y: 0}
	c = plotter.XY{X: p.Lbc, Y: 0}
	d = plotter.XY{X: p.Lbc, Y: p.Hcd}
	return a, b, c, d
}

// ExportStructureDiagram exports a schematic of the frame with supports,
// applied forces and the distributed load to an image file. The format is
// chosen by the file extension (png, svg or pdf).
func ExportStructureDiagram(p frame.StructureParameters, filename string) error {
	pl := plot.New()
	pl.Title.Text = "Isostatic Frame A-B-C-D"
	pl.X.Label.Text = "x (m)"
	pl.Y.Label.Text = "y (m)"

	a, b, c, d := nodes(p)
	span := c.X - a.X
	if span <= 0 {
		span = 1
	}

	// Members A-B, B-C, C-D as one polyline.
	members, err := plotter.NewLine(plotter.XYs{a, b, c, d})
	if err != nil {
		return err
	}
	members.LineStyle.Width = vg.Points(2)
	members.LineStyle.Color = color.Black
	pl.Add(members)

	// Node markers.
	nodePts, err := plotter.NewScatter(plotter.XYs{a, b, c, d})
	if err != nil {
		return err
	}
	nodePts.GlyphStyle.Color = color.Black
	nodePts.GlyphStyle.Radius = vg.Points(4)
	nodePts.GlyphStyle.Shape = draw.CircleGlyph{}
	pl.Add(nodePts)

	// Support glyphs: open triangles under B (roller) and C (pin).
	glyph := span * 0.05
	if err := addSupportGlyph(pl, b, glyph, color.RGBA{B: 255, A: 255}); err != nil {
		return err
	}
	if err := addSupportGlyph(pl, c, glyph, color.RGBA{G: 128, A: 255}); err != nil {
		return err
	}

	// Roller wheel under the B triangle.
	wheel, err := plotter.NewScatter(plotter.XYs{{X: b.X, Y: b.Y - glyph*1.4}})
	if err != nil {
		return err
	}
	wheel.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	wheel.GlyphStyle.Radius = vg.Points(3)
	wheel.GlyphStyle.Shape = draw.RingGlyph{}
	pl.Add(wheel)

	// Applied horizontal forces at A and D, drawn as short red segments
	// pointing in the force direction.
	if err := addForceArrow(pl, a, p.Ha, span); err != nil {
		return err
	}
	if err := addForceArrow(pl, d, p.Hd, span); err != nil {
		return err
	}

	// Distributed load arrows over B-C.
	if p.Pbc != 0 {
		rise := span * 0.12
		if p.Pbc > 0 {
			rise = -rise
		}
		for i := 0; i <= 8; i++ {
			x := b.X + (c.X-b.X)*float64(i)/8
			arrow, err := plotter.NewLine(plotter.XYs{
				{X: x, Y: rise},
				{X: x, Y: 0},
			})
			if err != nil {
				return err
			}
			arrow.LineStyle.Width = vg.Points(1)
			arrow.LineStyle.Color = color.RGBA{R: 255, G: 140, A: 255}
			pl.Add(arrow)
		}
	}

	// Annotations.
	labels := []struct {
		x, y float64
		text string
	}{
		{a.X, a.Y + glyph, "A"},
		{b.X, b.Y + glyph, "B (roller)"},
		{c.X + glyph, c.Y - glyph, "C (pin)"},
		{d.X + glyph, d.Y, "D"},
		{a.X, a.Y - glyph*2, fmt.Sprintf("Ha=%.2f kN", p.Ha)},
		{d.X + glyph, d.Y + glyph, fmt.Sprintf("Hd=%.2f kN", p.Hd)},
		{(b.X + c.X) / 2, span * 0.15, fmt.Sprintf("Pbc=%.2f kN/m", p.Pbc)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		pl.Add(l)
	}

	return save(pl, filename, 8*vg.Inch, 5*vg.Inch)
}

// ExportForceDiagrams exports the shear and moment distributions along
// B-C to a single image file.
func ExportForceDiagrams(p frame.StructureParameters, res *frame.Result, filename string) error {
	pl := plot.New()
	pl.Title.Text = "Internal Forces along B-C"
	pl.X.Label.Text = "x from B (m)"
	pl.Y.Label.Text = "V (kN) / M (kN·m)"
	pl.Legend.Top = true

	const samples = 100
	vLine, err := plotter.NewLine(polylinePts(res.V, p.Lbc, samples))
	if err != nil {
		return err
	}
	vLine.LineStyle.Width = vg.Points(2)
	vLine.LineStyle.Color = color.RGBA{B: 255, A: 255}
	pl.Add(vLine)
	pl.Legend.Add(fmt.Sprintf("V(x) = %s", res.V), vLine)

	mLine, err := plotter.NewLine(polylinePts(res.M, p.Lbc, samples))
	if err != nil {
		return err
	}
	mLine.LineStyle.Width = vg.Points(2)
	mLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
	mLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	pl.Add(mLine)
	pl.Legend.Add(fmt.Sprintf("M(x) = %s", res.M), mLine)

	// Zero reference line.
	zero, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: p.Lbc, Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	pl.Add(zero)

	return save(pl, filename, 8*vg.Inch, 6*vg.Inch)
}

// addSupportGlyph draws an open triangle with its apex at the node,
// matching the conventional support symbol.
func addSupportGlyph(pl *plot.Plot, at plotter.XY, size float64, c color.Color) error {
	tri, err := plotter.NewLine(plotter.XYs{
		{X: at.X - size, Y: at.Y - size},
		{X: at.X + size, Y: at.Y - size},
		{X: at.X, Y: at.Y},
		{X: at.X - size, Y: at.Y - size},
	})
	if err != nil {
		return err
	}
	tri.LineStyle.Width = vg.Points(1.5)
	tri.LineStyle.Color = c
	pl.Add(tri)
	return nil
}

// addForceArrow draws a horizontal force at a node as a red segment whose
// length scales with the span; zero forces are skipped.
func addForceArrow(pl *plot.Plot, at plotter.XY, force, span float64) error {
	if force == 0 {
		return nil
	}
	length := span * 0.12
	if force < 0 {
		length = -length
	}
	seg, err := plotter.NewLine(plotter.XYs{
		{X: at.X - length, Y: at.Y},
		{X: at.X, Y: at.Y},
	})
	if err != nil {
		return err
	}
	seg.LineStyle.Width = vg.Points(2)
	seg.LineStyle.Color = color.RGBA{R: 255, A: 255}
	pl.Add(seg)
	return nil
}

func polylinePts(poly frame.Polynomial, lbc float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := lbc * float64(i) / float64(n-1)
		pts[i] = plotter.XY{X: x, Y: poly.Eval(x)}
	}
	return pts
}

// save writes the plot, picking the format from the file extension and
// creating the target directory if needed.
func save(pl *plot.Plot, filename string, w, h vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return pl.Save(w, h, filename)
	default:
		return pl.Save(w, h, filename+".png")
	}
}
