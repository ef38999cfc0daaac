package figure

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

const (
	imageWidth  = 11 * vg.Inch
	imageHeight = 7.5 * vg.Inch
	pdfMargin   = 0.5 * vg.Inch
)

// ErrNoFrames is returned when rendering a figure built from no records.
var ErrNoFrames = errors.New("figure has no frames")

// Plot renders one frame of the figure as a static gonum plot using the
// same axes, ranges and team colours as the interactive chart.
func (s *Spec) Plot(frame int) (*plot.Plot, error) {
	if len(s.Frames) == 0 {
		return nil, ErrNoFrames
	}
	if frame < 0 || frame >= len(s.Frames) {
		return nil, errors.Errorf("frame %d out of range [0, %d)", frame, len(s.Frames))
	}
	f := s.Frames[frame]

	p := plot.New()
	p.Title.Text = plainText(s.Layout.Title.Text) + " - Week " + f.Name
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.Title.TextStyle.Color = parseHexColor(s.Layout.Title.Font.Color)
	p.BackgroundColor = color.Transparent

	p.X.Label.Text = s.Layout.XAxis.Title.Text
	p.X.Min, p.X.Max = s.Layout.XAxis.Range[0], s.Layout.XAxis.Range[1]
	p.X.Tick.Marker = stepTicks(s.Layout.XAxis.DTick)
	p.Y.Label.Text = s.Layout.YAxis.Title.Text
	p.Y.Min, p.Y.Max = s.Layout.YAxis.Range[0], s.Layout.YAxis.Range[1]
	p.Y.Tick.Marker = stepTicks(s.Layout.YAxis.DTick)

	var (
		pts    plotter.XYs
		labels []string
		colors []color.Color
	)
	for _, tr := range f.Data {
		for i := range tr.X {
			pts = append(pts, plotter.XY{X: float64(tr.X[i]), Y: float64(tr.Y[i])})
			labels = append(labels, tr.Text[i])
			colors = append(colors, parseHexColor(tr.Marker.Color))
		}
	}
	p.Add(plotter.NewGrid())
	if len(pts) == 0 {
		return p, nil
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	radius := vg.Points(float64(MarkerSize) / 2)
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: radius, Shape: draw.CircleGlyph{}}
	}

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return nil, err
	}
	// middle-left of each point
	for i := range names.TextStyle {
		names.TextStyle[i].XAlign = draw.XRight
		names.TextStyle[i].YAlign = draw.YCenter
		names.TextStyle[i].Font.Size = vg.Points(FontSize)
	}
	names.Offset = vg.Point{X: -radius - vg.Points(2)}

	p.Add(scatter, names)
	return p, nil
}

// WritePNG writes frame as a PNG image.
func (s *Spec) WritePNG(w io.Writer, frame int) error {
	p, err := s.Plot(frame)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imageWidth, imageHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// WritePDF writes a landscape PDF with one page per frame, in week order.
func (s *Spec) WritePDF(w io.Writer) error {
	if len(s.Frames) == 0 {
		return ErrNoFrames
	}
	c := vgpdf.New(imageWidth, imageHeight)
	for i := range s.Frames {
		if i > 0 {
			c.NextPage()
		}
		p, err := s.Plot(i)
		if err != nil {
			return errors.Wrapf(err, "frame %s", s.Frames[i].Name)
		}
		dc := draw.New(c)
		p.Draw(draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin))
	}
	_, err := c.WriteTo(w)
	return err
}

// stepTicks labels every multiple of its value between min and max.
type stepTicks float64

func (st stepTicks) Ticks(min, max float64) []plot.Tick {
	step := float64(st)
	if step <= 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	var ticks []plot.Tick
	for v := math.Ceil(min/step) * step; v <= max; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}

// plainText strips the HTML tags Plotly titles carry.
func plainText(s string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// parseHexColor parses "#RRGGBB". Anything else renders black.
func parseHexColor(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
