//go:generate mockgen -source=plot.go -destination=mocks/mock_plot.go -package=mocks

// Package plot renders the log-log chart of orbital period against
// semi-major axis for both period models.
package plot

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	apperrors "github.com/agbru/kepler/internal/errors"
	"github.com/agbru/kepler/internal/kepler"
)

const (
	// DefaultWidth and DefaultHeight are the saved chart dimensions.
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Chart is the data plotted: one point per body and model, in AU and years.
type Chart struct {
	Title           string
	Names           []string
	SemiMajorAxesAU []float64
	TestMassYears   []float64
	TwoBodyYears    []float64
}

// Len returns the number of bodies in the chart.
func (c Chart) Len() int { return len(c.SemiMajorAxesAU) }

// Renderer writes a chart to a file.
type Renderer interface {
	// Render draws chart and saves it at path. The format is chosen from the
	// path's extension.
	Render(ctx context.Context, chart Chart, path string) error
}

// NewChart converts bodies and their periods to plot units.
func NewChart(title string, bodies []kepler.Body, periods kepler.Periods, c kepler.Constants) (Chart, error) {
	if len(bodies) != periods.Len() {
		return Chart{}, apperrors.LengthMismatchError{Left: len(bodies), Right: periods.Len()}
	}
	if len(periods.TestMass) != len(periods.TwoBody) {
		return Chart{}, apperrors.LengthMismatchError{Left: len(periods.TestMass), Right: len(periods.TwoBody)}
	}
	chart := Chart{
		Title:           title,
		Names:           make([]string, len(bodies)),
		SemiMajorAxesAU: make([]float64, len(bodies)),
		TestMassYears:   make([]float64, len(bodies)),
		TwoBodyYears:    make([]float64, len(bodies)),
	}
	for i, b := range bodies {
		chart.Names[i] = b.Name
		chart.SemiMajorAxesAU[i] = b.SemiMajorAxis / c.AU
		chart.TestMassYears[i] = periods.TestMass[i] / c.Year
		chart.TwoBodyYears[i] = periods.TwoBody[i] / c.Year
	}
	return chart, nil
}

// Validate checks that every series is aligned and plottable on log axes.
func (c Chart) Validate() error {
	n := c.Len()
	if n == 0 {
		return apperrors.NewValidationError("chart", "no points to plot")
	}
	for _, series := range [][]float64{c.TestMassYears, c.TwoBodyYears} {
		if len(series) != n {
			return apperrors.LengthMismatchError{Left: n, Right: len(series)}
		}
	}
	for i := 0; i < n; i++ {
		for _, v := range []float64{c.SemiMajorAxesAU[i], c.TestMassYears[i], c.TwoBodyYears[i]} {
			if !(v > 0) {
				return apperrors.NewValidationError(fmt.Sprintf("point[%d]", i), "log axes need positive values, got %g", v)
			}
		}
	}
	return nil
}

// GonumRenderer implements Renderer with gonum.org/v1/plot.
type GonumRenderer struct {
	Width, Height vg.Length
}

var _ Renderer = GonumRenderer{}

// NewGonumRenderer returns a renderer with the default dimensions.
func NewGonumRenderer() GonumRenderer {
	return GonumRenderer{Width: DefaultWidth, Height: DefaultHeight}
}

// Render draws both models as lines with point markers on log-log axes.
func (r GonumRenderer) Render(ctx context.Context, chart Chart, path string) error {
	if err := chart.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p := gonum.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = "a [AU]"
	p.Y.Label.Text = "T [yr]"
	p.X.Scale = gonum.LogScale{}
	p.Y.Scale = gonum.LogScale{}
	p.X.Tick.Marker = gonum.LogTicks{Prec: -1}
	p.Y.Tick.Marker = gonum.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	series := []struct {
		label string
		years []float64
		tint  color.Color
		shape draw.GlyphDrawer
	}{
		{"test mass", chart.TestMassYears, color.RGBA{R: 0xFF, G: 0x8C, A: 0xFF}, draw.CircleGlyph{}},
		{"two body", chart.TwoBodyYears, color.RGBA{R: 0x44, G: 0x88, B: 0xFF, A: 0xFF}, draw.CrossGlyph{}},
	}
	for _, s := range series {
		line, points, err := plotter.NewLinePoints(xys(chart.SemiMajorAxesAU, s.years))
		if err != nil {
			return fmt.Errorf("build %s series: %w", s.label, err)
		}
		line.Color = s.tint
		points.Color = s.tint
		points.Shape = s.shape
		p.Add(line, points)
		p.Legend.Add(s.label, line, points)
	}

	if len(chart.Names) == chart.Len() {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    xys(chart.SemiMajorAxesAU, chart.TwoBodyYears),
			Labels: chart.Names,
		})
		if err != nil {
			return fmt.Errorf("build labels: %w", err)
		}
		labels.Offset = vg.Point{X: 4, Y: -12}
		p.Add(labels)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
