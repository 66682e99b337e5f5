package main

import (
	"github.com/pkg/errors"
	"github.com/rootplot/rootplot/pkg/conf"
	"github.com/rootplot/rootplot/pkg/export"
	"github.com/rootplot/rootplot/pkg/render"
	"github.com/sirupsen/logrus"
)

// Configuration is the run configuration gathered from flags and environment.
type Configuration struct {
	// Files are archive paths in drawing order, the reference one first.
	Files         []string
	HistogramName string

	List        bool
	Interactive bool
	Progress    bool

	Render render.Options

	LogLevel      logrus.Level
	SaveDirectory string
	Formats       []string
}

// newConfiguration builds configuration from parsed flags.
func newConfiguration() (Configuration, error) {
	cfg := Configuration{
		HistogramName: histogramNameFlag.Value(),
		List:          listFlag.Value(),
		Interactive:   interactiveFlag.Value(),
		Progress:      progressFlag.Value(),
		Render: render.Options{
			ShowRatio:     showRatioFlag.Value(),
			LogX:          logXFlag.Value(),
			LogY:          logYFlag.Value(),
			FillReference: fillReferenceFlag.Value(),
			XMin:          xMinFlag.Value(),
			XMax:          xMaxFlag.Value(),
			YMin:          yMinFlag.Value(),
			YMax:          yMaxFlag.Value(),
			Colors:        colorsFlag.Value(),
		},
		SaveDirectory: saveDirectoryFlag.Value(),
		Formats:       formatsFlag.Value(),
	}

	level, err := conf.LogLevel()
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = level

	cfg.Files = append(rootFilesFlag.Value(), rootFilesArg.Value()...)
	if reference := referenceFileFlag.Value(); reference != "" {
		logrus.Infof("Using %q as reference", reference)
		cfg.Files = append([]string{reference}, cfg.Files...)
	}
	if len(cfg.Files) == 0 {
		return cfg, errors.New("no ROOT file has been given")
	}

	if cfg.HistogramName == "" {
		return cfg, errors.New("no histogram name has been set")
	}

	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{export.TeX}
	}
	for _, format := range cfg.Formats {
		if !export.IsSupported(format) {
			return cfg, errors.Errorf("unsupported format %q", format)
		}
	}

	return cfg, nil
}
