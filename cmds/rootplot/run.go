package main

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rootplot/rootplot/pkg/archive"
	"github.com/rootplot/rootplot/pkg/export"
	"github.com/rootplot/rootplot/pkg/histogram"
	"github.com/rootplot/rootplot/pkg/render"
	"github.com/rootplot/rootplot/pkg/visualization"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"
	"gopkg.in/cheggaaa/pb.v1"
)

// list prints contents of every archive.
func list(files []string, out io.Writer) error {
	for _, filename := range files {
		file, err := archive.Open(filename)
		if err != nil {
			return err
		}
		visualization.DrawArchive(out, file)
		file.Close()
	}
	return nil
}

// plot draws every matched group into the save directory and prints paths of written documents.
func plot(cfg Configuration, out io.Writer) error {
	container := histogram.NewHistogramContainer()
	err := container.Grab(cfg.Files, cfg.HistogramName)
	if err != nil {
		return err
	}

	var bar *pb.ProgressBar
	if cfg.Progress && !container.Groups().Empty() {
		bar = newProgressBar(container.Groups().Len(), os.Stderr)
		defer bar.Finish()
	}

	var saved []string
	err = container.Show(histogram.RendererFunc(func(name string, series []*hbook.H1D) error {
		if bar != nil {
			defer bar.Increment()
		}

		fig, err := render.Render(name, series, cfg.Render)
		if err != nil {
			return err
		}
		written, err := export.Save(fig, cfg.SaveDirectory, cfg.Formats...)
		saved = append(saved, written...)
		return err
	}))

	visualization.PrintList(out, visualization.NewList(saved, ""))
	return err
}

// newProgressBar returns started bar writing to output.
// It has to be configured before Start, which spawns the refreshing goroutine.
func newProgressBar(total int, output io.Writer) *pb.ProgressBar {
	bar := pb.New(total)
	bar.Output = output
	bar.ShowCounters = false
	bar.ShowTimeLeft = true
	return bar.Start()
}

// waitForUser blocks until a line is read from in or the process is interrupted.
func waitForUser(in io.Reader) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	done := make(chan struct{})
	go func() {
		bufio.NewReader(in).ReadString('\n')
		close(done)
	}()

	logrus.Info("Press Enter to exit")
	select {
	case <-done:
	case sig := <-signals:
		logrus.Debugf("Received %v", sig)
	}
}
