package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mstolbov/attractor/internal/chaos"
)

// ProjectionToPNG renders a projection as a thin line plot and writes it to
// filename. Axis labels come from the projection itself.
func ProjectionToPNG(proj *chaos.Projection, title, filename string) error {
	if proj == nil || len(proj.Points) == 0 {
		return fmt.Errorf("no projection data to render")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = proj.XLabel + " Axis"
	p.Y.Label.Text = proj.YLabel + " Axis"

	pts := make(plotter.XYs, len(proj.Points))
	for i, pt := range proj.Points {
		pts[i].X = pt[0]
		pts[i].Y = pt[1]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(0.5)
	p.Add(line)

	return savePNG(p, 8.0, 8.0, filename)
}

func savePNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	dc := draw.New(c)
	p.Draw(dc)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}
