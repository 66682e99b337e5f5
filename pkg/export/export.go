// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/rootplot/rootplot/pkg/render"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgtex"
)

const (
	// TeX is the standalone LaTeX/TikZ document format.
	TeX = "tex"

	ratioSuffix = "_with_ratio"
)

// Formats lists extensions figures can be saved as.
var Formats = []string{TeX, "pdf", "svg", "eps", "png", "jpg", "tiff"}

// IsSupported checks if figures can be saved with given extension.
func IsSupported(format string) bool {
	format = normalize(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}

// FileName returns the name of the document holding the figure.
// Figures with ratio pad get the "_with_ratio" suffix.
func FileName(fig *render.Figure, format string) string {
	name := fig.Name
	if fig.Ratio {
		name += ratioSuffix
	}
	return name + "." + normalize(format)
}

// Save writes the figure in every format into dir and returns paths of the written files.
// Existing files are overwritten.
func Save(fig *render.Figure, dir string, formats ...string) ([]string, error) {
	if len(formats) == 0 {
		formats = []string{TeX}
	}

	var written []string
	for _, format := range formats {
		if !IsSupported(format) {
			return written, errors.Errorf("unsupported format %q, use one of %s",
				format, strings.Join(Formats, ", "))
		}

		filename := path.Join(dir, FileName(fig, format))
		err := saveAs(fig, filename, normalize(format))
		if err != nil {
			return written, errors.Wrapf(err, "cannot save %q", filename)
		}
		logrus.Infof("Saved %s", filename)
		written = append(written, filename)
	}
	return written, nil
}

func saveAs(fig *render.Figure, filename string, format string) (err error) {
	canvas, err := newCanvas(fig.Width, fig.Height, format)
	if err != nil {
		return err
	}
	fig.Draw(draw.New(canvas))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := file.Close()
		if err == nil {
			err = closeErr
		}
	}()

	_, err = canvas.WriteTo(file)
	return err
}

func newCanvas(w, h vg.Length, format string) (vg.CanvasWriterTo, error) {
	if format == TeX {
		return vgtex.NewDocument(w, h), nil
	}
	return draw.NewFormattedCanvas(w, h, format)
}
