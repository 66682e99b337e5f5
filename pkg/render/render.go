package render

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"github.com/rootplot/rootplot/pkg/hstat"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// Width of every figure.
	Width = 15 * vg.Centimeter
	// PlainHeight is the height of a figure without ratio pad (600x500).
	PlainHeight = 12.5 * vg.Centimeter
	// RatioHeight is the height of a figure with ratio pad (600x700).
	RatioHeight = 17.5 * vg.Centimeter

	// Vertical extents of the pads, as fractions of the figure height.
	mainPadLow   = 0.302
	ratioPadHigh = 0.298

	// Text sizes and title padding, as fractions of the pad height.
	tickLabelSize = 0.035
	axisTitleSize = 0.04
	titleSize     = 0.045
	titlePadding  = 0.01

	// Ratio pad y range before widening.
	ratioLow  = 0.9
	ratioHigh = 1.1

	// Annotation placement in the ratio pad, as fractions of its data area.
	annotationX    = 0.03
	annotationTop  = 0.1
	annotationStep = 0.15
)

// Figure is a drawn group of histograms, ready to be exported.
type Figure struct {
	Name  string
	Ratio bool

	Width  vg.Length
	Height vg.Length

	// Main holds the overlaid histograms.
	Main *hplot.Plot
	// Sub is the ratio pad; nil without ratio.
	Sub *hplot.Plot

	// Ratios of every series to the first one, in series order.
	Ratios []*hbook.S2D
	// Chi2 of every compared series against the first one.
	Chi2        []hstat.Chi2
	Annotations []string

	// Histograms and ratios as handed to the plotters, cut to the x range.
	// Statistics above are always taken from the whole histograms.
	shown       []*hbook.H1D
	shownRatios []*hbook.S2D
	labels      *plotter.Labels
}

// Render builds the figure of one group. The first series is the reference.
func Render(name string, series []*hbook.H1D, opts Options) (*Figure, error) {
	if len(series) == 0 {
		return nil, errors.Errorf("no histogram to draw for %q", name)
	}

	fig := &Figure{
		Name:   name,
		Ratio:  opts.ShowRatio,
		Width:  Width,
		Height: PlainHeight,
	}
	if opts.ShowRatio {
		fig.Height = RatioHeight
	}

	cycle := NewCycle()
	colors := make([]color.Color, len(series))
	for i := range series {
		colors[i] = cycle.Resolve(opts.colorName(i))
	}

	xlo, xhi, err := xWindow(series, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot draw %q", name)
	}

	main := hplot.New()
	main.Title.Text = title(name, series[0])
	for i, h := range series {
		shown := clipH1D(h, xlo, xhi)
		fig.shown = append(fig.shown, shown)
		if shown == nil {
			logrus.Warnf("%s: histogram %d has no bin within [%g, %g]", name, i, xlo, xhi)
			continue
		}
		main.Add(newSeries(i, shown, colors[i], opts))
	}
	err = applyBounds(main.Plot, fig.shown, xlo, xhi, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot draw %q", name)
	}

	if !opts.ShowRatio {
		style(main.Plot, fig.Height, 1)
		fig.Main = main
		return fig, nil
	}

	mainHeight := fig.Height * (1 - mainPadLow)
	ratioHeight := fig.Height * ratioPadHigh
	factor := float64(mainHeight / ratioHeight)
	style(main.Plot, mainHeight, 1)
	fig.Main = main

	err = fig.buildRatioPad(series, colors, opts, textSize(tickLabelSize, ratioHeight, factor))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot draw ratio of %q", name)
	}
	style(fig.Sub.Plot, ratioHeight, factor)

	// The ratio pad carries the x axis.
	main.X.Tick.Marker = unlabeledTicks{main.X.Tick.Marker}
	main.X.Label.Text = ""

	return fig, nil
}

func title(name string, h *hbook.H1D) string {
	if t, ok := h.Ann["title"].(string); ok && t != "" {
		return t
	}
	return name
}

func newSeries(i int, h *hbook.H1D, c color.Color, opts Options) *hplot.H1D {
	if i == 0 {
		ref := hplot.NewH1D(h, hplot.WithLogY(opts.LogY))
		ref.Infos.Style = hplot.HInfoNone
		ref.LineStyle.Color = c
		if opts.FillReference {
			ref.FillColor = c
			ref.LineStyle.Color = color.Black
		}
		return ref
	}

	cmp := hplot.NewH1D(h,
		hplot.WithLogY(opts.LogY),
		hplot.WithYErrBars(true),
		hplot.WithGlyphStyle(marker(c)),
	)
	cmp.Infos.Style = hplot.HInfoNone
	cmp.LineStyle.Width = 0
	cmp.YErrs.LineStyle.Color = c
	return cmp
}

func marker(c color.Color) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}
}

// applyBounds sets the x range, overrides the y data range with requested
// bounds and switches to log scales.
func applyBounds(p *plot.Plot, shown []*hbook.H1D, xlo, xhi float64, opts Options) error {
	p.X.Min, p.X.Max = xlo, xhi
	if math.IsInf(p.Y.Min, 1) || math.IsInf(p.Y.Max, -1) {
		// Nothing drawn.
		p.Y.Min, p.Y.Max = 0, 1
	}
	if opts.YMin != nil {
		p.Y.Min = *opts.YMin
	}
	if opts.YMax != nil {
		p.Y.Max = *opts.YMax
	}

	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if opts.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		if p.Y.Min <= 0 {
			min := smallestPositiveContent(shown)
			logrus.Warnf("Lower y bound %g cannot be drawn in log scale, using %g", p.Y.Min, min)
			p.Y.Min = min
		}
	}

	if !(p.Y.Min < p.Y.Max) {
		return errors.Errorf("empty y range [%g, %g]", p.Y.Min, p.Y.Max)
	}
	return nil
}

func smallestPositiveEdge(series []*hbook.H1D) float64 {
	min := math.Inf(1)
	for _, h := range series {
		for _, bin := range h.Binning.Bins {
			for _, edge := range []float64{bin.XMin(), bin.XMax()} {
				if edge > 0 && edge < min {
					min = edge
				}
			}
		}
	}
	if math.IsInf(min, 1) {
		return 1
	}
	return min
}

func smallestPositiveContent(series []*hbook.H1D) float64 {
	min := math.Inf(1)
	for _, h := range series {
		if h == nil {
			continue
		}
		for _, bin := range h.Binning.Bins {
			if w := bin.SumW(); w > 0 && w < min {
				min = w
			}
		}
	}
	if math.IsInf(min, 1) {
		return 1
	}
	return min
}

// buildRatioPad divides every series by the reference and annotates the
// compared ones with their chi2/ndf. Only points within the x range of the
// main pad are drawn and widen the y range.
func (f *Figure) buildRatioPad(series []*hbook.H1D, colors []color.Color, opts Options, annotationSize vg.Length) error {
	sub := hplot.New()
	sub.Y.Label.Text = "Ratio"

	reference, err := hstat.Ratio(series[0], series[0])
	if err != nil {
		return err
	}
	f.Ratios = append(f.Ratios, reference)

	line := plotter.NewFunction(func(float64) float64 { return 1 })
	line.LineStyle.Color = colors[0]
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	sub.Add(line)

	low, high := ratioLow, ratioHigh
	var annotationColors []color.Color
	for i := 1; i < len(series); i++ {
		ratio, err := hstat.Ratio(series[i], series[0])
		if err != nil {
			return errors.Wrapf(err, "series %d", i)
		}
		f.Ratios = append(f.Ratios, ratio)

		shown := clipS2D(ratio, f.Main.X.Min, f.Main.X.Max)
		f.shownRatios = append(f.shownRatios, shown)
		if shown.Len() > 0 {
			points := hplot.NewS2D(shown, hplot.WithYErrBars(true))
			points.GlyphStyle = marker(colors[i])
			points.YErrs.LineStyle.Color = colors[i]
			sub.Add(points)
		}

		if min, max, ok := hstat.Extrema(shown); ok {
			low = math.Min(low, ratioLow*min)
			high = math.Max(high, ratioHigh*max)
		}

		chi2, err := hstat.Chi2Test(series[0], series[i])
		if err != nil {
			return errors.Wrapf(err, "series %d", i)
		}
		f.Chi2 = append(f.Chi2, chi2)
		f.Annotations = append(f.Annotations,
			"chi2/ndf = "+decimal.NewFromFloat(chi2.PerNDF()).StringFixed(2))
		annotationColors = append(annotationColors, colors[i])
		logrus.Debugf("%s: series %d %v, p-value %g", f.Name, i, chi2, chi2.PValue())
	}

	sub.X.Min, sub.X.Max = f.Main.X.Min, f.Main.X.Max
	sub.X.Scale = f.Main.X.Scale
	sub.X.Tick.Marker = f.Main.X.Tick.Marker
	sub.Y.Min, sub.Y.Max = low, high

	if len(f.Annotations) > 0 {
		labels, err := annotate(sub.Plot, f.Annotations, opts.LogX)
		if err != nil {
			return err
		}
		for k := range labels.TextStyle {
			labels.TextStyle[k].Color = annotationColors[k]
			labels.TextStyle[k].Font.Size = annotationSize
		}
		sub.Add(labels)
		f.labels = labels
	}

	f.Sub = sub
	return nil
}

// annotate places texts in the upper left corner of the final data area,
// one under another.
func annotate(p *plot.Plot, texts []string, logX bool) (*plotter.Labels, error) {
	x := p.X.Min + annotationX*(p.X.Max-p.X.Min)
	if logX {
		x = p.X.Min * math.Pow(p.X.Max/p.X.Min, annotationX)
	}

	xys := make(plotter.XYs, len(texts))
	for k := range texts {
		xys[k].X = x
		xys[k].Y = p.Y.Max - (annotationTop+annotationStep*float64(k))*(p.Y.Max-p.Y.Min)
	}

	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}

// style sets text sizes relative to the pad height. Sizes of a pad smaller
// than the main one are multiplied by factor so both pads read alike.
func style(p *plot.Plot, padHeight vg.Length, factor float64) {
	size := func(fraction float64) vg.Length {
		return textSize(fraction, padHeight, factor)
	}

	p.Title.TextStyle.Font.Size = size(titleSize)
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Tick.Label.Font.Size = size(tickLabelSize)
		axis.Label.TextStyle.Font.Size = size(axisTitleSize)
		axis.Label.Padding = size(titlePadding)
	}
}

func textSize(fraction float64, padHeight vg.Length, factor float64) vg.Length {
	return vg.Length(fraction*factor) * padHeight
}

// Draw draws the figure on given canvas. With ratio, the pads are stacked
// and their x axes aligned.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Sub == nil {
		f.Main.Draw(c)
		return
	}

	canvases := plot.Align(
		[][]*plot.Plot{{f.Main.Plot}, {f.Sub.Plot}},
		draw.Tiles{Rows: 2, Cols: 1},
		c,
	)
	top, bottom := canvases[0][0], canvases[1][0]

	height := c.Max.Y - c.Min.Y
	top.Min.Y = c.Min.Y + mainPadLow*height
	top.Max.Y = c.Max.Y
	bottom.Min.Y = c.Min.Y
	bottom.Max.Y = c.Min.Y + ratioPadHigh*height

	f.Main.Draw(top)
	f.Sub.Draw(bottom)
}
