package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/spacesedan/sentiform/internal/models"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DEFAULT_WIDTH  = 640
	DEFAULT_HEIGHT = 480

	// one point per pixel
	pixelDPI = 72
	barWidth = 40
)

var (
	ErrEmptySeries    = errors.New("chart series has no bars")
	ErrSeriesMismatch = errors.New("chart series labels and values differ in length")
)

type BarChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Colors []color.Color
}

func SentimentChartOptions() BarChartOptions {
	return BarChartOptions{
		Title:  "Sentiment Analysis",
		XLabel: "Metric",
		YLabel: "Value",
		Colors: []color.Color{colornames.Blue, colornames.Orange},
	}
}

func TokenChartOptions() BarChartOptions {
	return BarChartOptions{
		Title:  "Token Sentiment Distribution",
		XLabel: "Sentiment",
		YLabel: "Count",
		Colors: []color.Color{colornames.Green, colornames.Red, colornames.Gray},
	}
}

// Renderer draws bar charts to PNG. Every call builds its own plot and canvas.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DEFAULT_WIDTH
	}
	if height <= 0 {
		height = DEFAULT_HEIGHT
	}
	return &Renderer{width: width, height: height}
}

func (r *Renderer) Render(series models.ChartSeries, opts BarChartOptions) ([]byte, error) {
	if len(series.Labels) == 0 {
		return nil, ErrEmptySeries
	}
	if len(series.Labels) != len(series.Values) {
		return nil, fmt.Errorf("%w: %d labels, %d values",
			ErrSeriesMismatch, len(series.Labels), len(series.Values))
	}
	start := time.Now()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for i, v := range series.Values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(barWidth))
		if err != nil {
			return nil, fmt.Errorf("build bar %q: %w", series.Labels[i], err)
		}
		bar.XMin = float64(i)
		bar.Color = barColor(opts.Colors, i)
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	p.NominalX(series.Labels...)

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(r.width)), vg.Points(float64(r.height))),
		vgimg.UseDPI(pixelDPI),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	slog.Debug("[Charts] Rendered bar chart",
		slog.String("title", opts.Title),
		slog.Int("bars", len(series.Values)),
		slog.Int("bytes", buf.Len()),
		slog.Duration("elapsed", time.Since(start)))

	return buf.Bytes(), nil
}

func barColor(colors []color.Color, i int) color.Color {
	if len(colors) == 0 {
		return plotutil.Color(i)
	}
	return colors[i%len(colors)]
}
