package main

import (
	"strings"

	"github.com/rootplot/rootplot/pkg/conf"
	"github.com/rootplot/rootplot/pkg/export"
	"github.com/rootplot/rootplot/pkg/histogram"
	"github.com/rootplot/rootplot/pkg/render"
)

var (
	// Input.
	rootFilesFlag = conf.NewSliceFlag(
		"root-files", "ROOT archives to read histograms from. Can be given many times or as a comma separated list.")
	rootFilesArg      = conf.NewSliceArg("files", "ROOT archives to read histograms from.")
	referenceFileFlag = conf.NewStringFlag(
		"reference-root-file", "ROOT archive with reference histograms. They are drawn first and divide the others in ratio plots.", "")
	histogramNameFlag = conf.NewStringFlag(
		"histogram-name", `Name or regular expression of histograms to draw; "all" draws every one-dimensional histogram.`, histogram.All)
	listFlag = conf.NewBoolFlag("ls", "List contents of the ROOT archives and exit.", false)

	// Drawing.
	showRatioFlag     = conf.NewBoolFlag("show-ratio", "Draw ratio to the reference histogram below the histograms.", false)
	fillReferenceFlag = conf.NewBoolFlag("fill-reference", "Fill the reference histogram with its color.", false)
	logXFlag          = conf.NewBoolFlag("logx", "Logarithmic x axis.", false)
	logYFlag          = conf.NewBoolFlag("logy", "Logarithmic y axis.", false)
	xMinFlag          = conf.NewOptionalFloatFlag("xmin", "Lower bound of x axis.")
	xMaxFlag          = conf.NewOptionalFloatFlag("xmax", "Upper bound of x axis.")
	yMinFlag          = conf.NewOptionalFloatFlag("ymin", "Lower bound of y axis.")
	yMaxFlag          = conf.NewOptionalFloatFlag("ymax", "Upper bound of y axis.")
	colorsFlag        = conf.NewSliceFlag(
		"colors", "Colors of histograms in drawing order: "+strings.Join(render.ColorNames(), ", ")+". Missing ones are cycled.")

	// Output.
	saveDirectoryFlag = conf.NewStringFlag(
		"save-directory", "Directory for documents and the log. By default new directory in the system temporary one is created.", "")
	formatsFlag = conf.NewSliceFlag(
		"formats", "Document formats: "+strings.Join(export.Formats, ", ")+".", export.TeX)
	progressFlag    = conf.NewBoolFlag("progress", "Show progress bar over histogram groups.", false)
	interactiveFlag = conf.NewBoolFlag("interactive", "Wait for Enter or a signal after documents are written.", false)
)

func init() {
	rootFilesFlag.Short('i')
	interactiveFlag.Short('I')
}
