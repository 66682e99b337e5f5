package export

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/rootplot/rootplot/pkg/render"
	. "github.com/smartystreets/goconvey/convey"
	"go-hep.org/x/hep/hbook"
)

func newH1(shift float64) *hbook.H1D {
	h := hbook.NewH1D(10, 0, 10)
	for i := 0; i < 100; i++ {
		h.Fill(float64(i%10)+0.5+shift, 1)
	}
	return h
}

func TestSave(t *testing.T) {
	Convey("While saving figures", t, func() {
		dir, err := ioutil.TempDir("", "export")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		Convey("Figure without ratio should be saved under its name", func() {
			fig, err := render.Render("h1", []*hbook.H1D{newH1(0), newH1(0.2)}, render.Options{})
			So(err, ShouldBeNil)

			written, err := Save(fig, dir)
			So(err, ShouldBeNil)
			So(written, ShouldResemble, []string{path.Join(dir, "h1.tex")})

			content, err := ioutil.ReadFile(written[0])
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, `\begin{pgfpicture}`)
			So(string(content), ShouldContainSubstring, `\documentclass`)
		})

		Convey("Figure with ratio should get the suffix", func() {
			fig, err := render.Render("h1", []*hbook.H1D{newH1(0), newH1(0.2)}, render.Options{ShowRatio: true})
			So(err, ShouldBeNil)

			written, err := Save(fig, dir, "tex", "svg")
			So(err, ShouldBeNil)
			So(written, ShouldResemble, []string{
				path.Join(dir, "h1_with_ratio.tex"),
				path.Join(dir, "h1_with_ratio.svg"),
			})
			for _, filename := range written {
				info, err := os.Stat(filename)
				So(err, ShouldBeNil)
				So(info.Size(), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Unknown format should be an error", func() {
			fig, err := render.Render("h1", []*hbook.H1D{newH1(0)}, render.Options{})
			So(err, ShouldBeNil)

			_, err = Save(fig, dir, "gif")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unsupported format")
		})

		Convey("Missing directory should be an error", func() {
			fig, err := render.Render("h1", []*hbook.H1D{newH1(0)}, render.Options{})
			So(err, ShouldBeNil)

			_, err = Save(fig, path.Join(dir, "missing"), "tex")
			So(err, ShouldNotBeNil)
		})
	})
}

func float(v float64) *float64 {
	return &v
}

func TestSaveAxes(t *testing.T) {
	Convey("While saving figures with changed axes", t, func() {
		dir, err := ioutil.TempDir("", "export")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		series := []*hbook.H1D{newH1(0), newH1(0.2), newH1(0.4)}

		for _, tc := range []struct {
			name string
			opts render.Options
		}{
			{"logx", render.Options{LogX: true}},
			{"logx_ratio", render.Options{LogX: true, ShowRatio: true}},
			{"logx_xmin", render.Options{LogX: true, ShowRatio: true, XMin: float(1)}},
			{"logy_ratio", render.Options{LogY: true, ShowRatio: true}},
			{"bounded_ratio", render.Options{ShowRatio: true, FillReference: true, XMin: float(3), XMax: float(8)}},
		} {
			name := tc.name
			fig, err := render.Render(name, series, tc.opts)
			So(err, ShouldBeNil)

			Convey("Figure "+name+" should be saved in every format", func() {
				var written []string
				So(func() { written, err = Save(fig, dir, "png", "tex") }, ShouldNotPanic)
				So(err, ShouldBeNil)
				So(written, ShouldHaveLength, 2)
				for _, filename := range written {
					info, err := os.Stat(filename)
					So(err, ShouldBeNil)
					So(info.Size(), ShouldBeGreaterThan, 0)
				}
			})
		}
	})
}

func TestFileName(t *testing.T) {
	Convey("File name should follow figure name and ratio flag", t, func() {
		So(FileName(&render.Figure{Name: "pt"}, "tex"), ShouldEqual, "pt.tex")
		So(FileName(&render.Figure{Name: "pt", Ratio: true}, ".PDF"), ShouldEqual, "pt_with_ratio.pdf")
		So(IsSupported("png"), ShouldBeTrue)
		So(IsSupported("gif"), ShouldBeFalse)
	})
}
