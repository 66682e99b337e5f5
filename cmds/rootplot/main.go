package main

import (
	"io"
	"os"

	"github.com/rootplot/rootplot/pkg/conf"
	"github.com/rootplot/rootplot/pkg/utils/errutil"
	"github.com/rootplot/rootplot/pkg/utils/fs"
	"github.com/sirupsen/logrus"
)

// Check README.md for details.
func main() {
	// Setup conf.
	conf.SetAppName("rootplot")
	conf.SetHelp(`rootplot draws one-dimensional histograms stored in ROOT archives.
Histograms of the same name are overlaid on one figure, optionally with the ratio
to the histogram from the first (reference) archive, and saved as LaTeX documents.`)

	// Parse CLI.
	errutil.Check(conf.ParseFlags())

	cfg, err := newConfiguration()
	errutil.CheckWithContext(err, "Invalid configuration")

	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})

	if cfg.List {
		errutil.CheckWithContext(list(cfg.Files, os.Stdout), "Cannot list archives")
		return
	}

	// Create save directory and log to it.
	saveDirectory, err := fs.CreateSaveDirectory(cfg.SaveDirectory, conf.AppName())
	errutil.CheckWithContext(err, "Cannot create save directory")
	cfg.SaveDirectory = saveDirectory

	logFile, err := fs.OpenLogFile(saveDirectory)
	errutil.CheckWithContext(err, "Cannot create log file")
	defer logFile.Close()
	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))

	logrus.Infof("Saving documents to %q", saveDirectory)
	logrus.Debugf("Configuration:\n%s", conf.DumpConfig())

	err = plot(cfg, os.Stdout)
	if cfg.Interactive {
		waitForUser(os.Stdin)
	}
	errutil.CheckWithContext(err, "Cannot plot histograms")
}
