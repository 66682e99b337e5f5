package render

import (
	"fmt"
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// newH1 returns histogram over [0, len(contents)) with contents[i] unit entries in bin i.
func newH1(contents ...float64) *hbook.H1D {
	h := hbook.NewH1D(len(contents), 0, float64(len(contents)))
	for i, n := range contents {
		for j := 0; j < int(n); j++ {
			h.Fill(float64(i)+0.5, 1)
		}
	}
	return h
}

func float(v float64) *float64 {
	return &v
}

func TestRender(t *testing.T) {
	Convey("While rendering a group", t, func() {
		reference := newH1(10, 20, 30, 20, 10, 5)

		Convey("No histogram should be an error", func() {
			_, err := Render("h1", nil, Options{})
			So(err, ShouldNotBeNil)
		})

		Convey("Without ratio there should be one pad", func() {
			fig, err := Render("h1", []*hbook.H1D{reference, newH1(11, 19, 31, 20, 9, 5)}, Options{})
			So(err, ShouldBeNil)
			So(fig.Name, ShouldEqual, "h1")
			So(fig.Ratio, ShouldBeFalse)
			So(fig.Sub, ShouldBeNil)
			So(fig.Width, ShouldEqual, Width)
			So(fig.Height, ShouldEqual, PlainHeight)
			So(fig.Annotations, ShouldBeEmpty)
			So(fig.Main.Title.Text, ShouldEqual, "h1")
		})

		Convey("Requested x bounds should replace the data range", func() {
			fig, err := Render("h1", []*hbook.H1D{reference}, Options{XMin: float(2), XMax: float(5)})
			So(err, ShouldBeNil)
			So(fig.Main.X.Min, ShouldEqual, 2)
			So(fig.Main.X.Max, ShouldEqual, 5)

			Convey("And the ratio pad should share them", func() {
				fig, err := Render("h1", []*hbook.H1D{reference},
					Options{ShowRatio: true, XMin: float(2), XMax: float(5)})
				So(err, ShouldBeNil)
				So(fig.Sub.X.Min, ShouldEqual, 2)
				So(fig.Sub.X.Max, ShouldEqual, 5)
			})
		})

		Convey("Requested y bounds should replace the data range", func() {
			fig, err := Render("h1", []*hbook.H1D{reference}, Options{YMin: float(1), YMax: float(100)})
			So(err, ShouldBeNil)
			So(fig.Main.Y.Min, ShouldEqual, 1)
			So(fig.Main.Y.Max, ShouldEqual, 100)
		})

		Convey("Inverted bounds should be an error", func() {
			_, err := Render("h1", []*hbook.H1D{reference}, Options{XMin: float(5), XMax: float(2)})
			So(err, ShouldNotBeNil)
		})

		Convey("Non positive lower bound in log scale should be clamped", func() {
			fig, err := Render("h1", []*hbook.H1D{newH1(0, 4, 8)}, Options{LogX: true, LogY: true})
			So(err, ShouldBeNil)
			So(fig.Main.X.Min, ShouldEqual, 1)
			So(fig.Main.Y.Min, ShouldBeGreaterThan, 0)
		})

		Convey("With ratio and a single histogram only the reference line should be drawn", func() {
			fig, err := Render("h1", []*hbook.H1D{reference}, Options{ShowRatio: true})
			So(err, ShouldBeNil)
			So(fig.Ratio, ShouldBeTrue)
			So(fig.Height, ShouldEqual, RatioHeight)
			So(fig.Sub, ShouldNotBeNil)
			So(fig.Ratios, ShouldHaveLength, 1)
			So(fig.Annotations, ShouldBeEmpty)
			So(fig.Sub.Y.Min, ShouldEqual, 0.9)
			So(fig.Sub.Y.Max, ShouldEqual, 1.1)
			So(fig.Main.X.Label.Text, ShouldEqual, "")
		})

		Convey("With ratio each compared histogram should be annotated", func() {
			fig, err := Render("h1", []*hbook.H1D{reference, reference}, Options{ShowRatio: true})
			So(err, ShouldBeNil)
			So(fig.Ratios, ShouldHaveLength, 2)
			So(fig.Annotations, ShouldResemble, []string{"chi2/ndf = 0.00"})
			So(fig.Chi2[0].Value, ShouldEqual, 0)
			for _, pt := range fig.Ratios[1].Points() {
				So(pt.Y, ShouldAlmostEqual, 1)
			}
			So(fig.Sub.Y.Min, ShouldEqual, 0.9)
			So(fig.Sub.Y.Max, ShouldEqual, 1.1)

			Convey("And tick labels of the main pad should be hidden", func() {
				for _, tick := range fig.Main.X.Tick.Marker.Ticks(0, 6) {
					So(tick.Label, ShouldEqual, "")
				}
				labeled := 0
				for _, tick := range fig.Sub.X.Tick.Marker.Ticks(0, 6) {
					if tick.Label != "" {
						labeled++
					}
				}
				So(labeled, ShouldBeGreaterThan, 0)
			})
		})

		Convey("Ratio range should be widened to fit every comparison", func() {
			twice := newH1(20, 40, 60, 40, 20, 10)
			half := newH1(5, 10, 15, 10, 5, 5)
			fig, err := Render("h1", []*hbook.H1D{reference, twice, half}, Options{ShowRatio: true})
			So(err, ShouldBeNil)
			So(fig.Annotations, ShouldHaveLength, 2)
			So(math.Abs(fig.Sub.Y.Max-2.2), ShouldBeLessThan, 1e-9)
			So(math.Abs(fig.Sub.Y.Min-0.45), ShouldBeLessThan, 1e-9)
			for _, annotation := range fig.Annotations {
				So(strings.HasPrefix(annotation, "chi2/ndf = "), ShouldBeTrue)
			}
		})

		Convey("Ratio of different binnings should be an error", func() {
			_, err := Render("h1", []*hbook.H1D{reference, newH1(1, 2)}, Options{ShowRatio: true})
			So(err, ShouldNotBeNil)
		})
	})
}

func drawFigure(fig *Figure) {
	fig.Draw(draw.New(vgimg.New(fig.Width, fig.Height)))
}

func rising(n int) *hbook.H1D {
	h := hbook.NewH1D(n, 0, float64(n))
	for i := 0; i < n; i++ {
		h.Fill(float64(i)+0.5, float64(i+1))
	}
	return h
}

func TestRenderLogX(t *testing.T) {
	Convey("While rendering histograms starting at zero in log x", t, func() {
		series := []*hbook.H1D{rising(20), rising(20)}

		for i, opts := range []Options{
			{LogX: true},
			{LogX: true, ShowRatio: true},
			{LogX: true, ShowRatio: true, XMin: float(1)},
			{LogX: true, LogY: true, ShowRatio: true, FillReference: true},
		} {
			fig, err := Render("h1", series, opts)
			So(err, ShouldBeNil)
			So(fig.Main.X.Min, ShouldEqual, 1)

			Convey(fmt.Sprintf("Bins below the axis should not be drawn with options #%d", i), func() {
				for _, shown := range fig.shown {
					So(shown.Binning.Bins, ShouldHaveLength, 19)
					So(shown.Binning.Bins[0].XMin(), ShouldEqual, 1)
				}
				for _, shown := range fig.shownRatios {
					for _, pt := range shown.Points() {
						So(pt.X-pt.ErrX.Min, ShouldBeGreaterThanOrEqualTo, 1.0)
					}
				}
				So(func() { drawFigure(fig) }, ShouldNotPanic)
			})
		}
	})
}

func TestRenderBounded(t *testing.T) {
	Convey("While rendering with x bounds", t, func() {
		reference, compared := rising(20), rising(20)
		compared.Fill(0.5, 3)

		whole, err := Render("h1", []*hbook.H1D{reference, compared}, Options{ShowRatio: true})
		So(err, ShouldBeNil)
		fig, err := Render("h1", []*hbook.H1D{reference, compared},
			Options{ShowRatio: true, FillReference: true, XMin: float(3), XMax: float(15)})
		So(err, ShouldBeNil)

		Convey("Only bins inside the bounds should be drawn", func() {
			for _, shown := range fig.shown {
				So(shown.Binning.Bins, ShouldHaveLength, 12)
				So(shown.Binning.Bins[0].XMin(), ShouldEqual, 3)
				So(shown.Binning.Bins[11].XMax(), ShouldEqual, 15)
				So(shown.Binning.Bins[0].SumW(), ShouldEqual, 4)
			}
			So(fig.shownRatios[0].Len(), ShouldEqual, 12)
			for _, pt := range fig.shownRatios[0].Points() {
				So(pt.X, ShouldBeBetween, 3.0, 15.0)
			}
			So(func() { drawFigure(fig) }, ShouldNotPanic)
		})

		Convey("Statistics should still use whole histograms", func() {
			So(fig.Ratios[1].Len(), ShouldEqual, 20)
			So(fig.Chi2, ShouldResemble, whole.Chi2)
			So(fig.Annotations, ShouldResemble, whole.Annotations)
		})

		Convey("Ratio range should follow drawn points only", func() {
			// Only the first bin differs and it lies outside the bounds.
			So(fig.Sub.Y.Max, ShouldEqual, 1.1)
			So(whole.Sub.Y.Max, ShouldBeGreaterThan, 1.1)
		})

		Convey("Histogram without bins inside the bounds should be skipped", func() {
			outside := hbook.NewH1D(5, 100, 105)
			fig, err := Render("h1", []*hbook.H1D{reference, outside}, Options{XMax: float(15)})
			So(err, ShouldBeNil)
			So(fig.shown[1], ShouldBeNil)
			So(func() { drawFigure(fig) }, ShouldNotPanic)
		})
	})
}

func TestAnnotationSize(t *testing.T) {
	Convey("Annotations should be scaled like the ratio pad text", t, func() {
		fig, err := Render("h1", []*hbook.H1D{rising(6), rising(6), rising(6)}, Options{ShowRatio: true})
		So(err, ShouldBeNil)
		So(fig.labels, ShouldNotBeNil)
		So(fig.labels.TextStyle, ShouldHaveLength, 2)
		for _, style := range fig.labels.TextStyle {
			So(style.Font.Size, ShouldEqual, fig.Sub.X.Tick.Label.Font.Size)
			So(style.Font.Size, ShouldAlmostEqual, fig.Main.X.Tick.Label.Font.Size, 1e-6)
		}
	})
}
