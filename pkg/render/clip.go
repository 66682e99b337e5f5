package render

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"
)

// edgeTolerance is the relative slack allowed when comparing bin edges with bounds.
const edgeTolerance = 1e-9

// xWindow returns the x range to draw: the union of the bins of every series,
// overridden by requested bounds. On log scale the lower bound is moved to the
// smallest positive edge when it is not positive.
func xWindow(series []*hbook.H1D, opts Options) (lo, hi float64, err error) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, h := range series {
		for _, bin := range h.Binning.Bins {
			lo = math.Min(lo, bin.XMin())
			hi = math.Max(hi, bin.XMax())
		}
	}

	if opts.XMin != nil {
		lo = *opts.XMin
	}
	if opts.XMax != nil {
		hi = *opts.XMax
	}

	if opts.LogX && lo <= 0 {
		min := smallestPositiveEdge(series)
		logrus.Warnf("Lower x bound %g cannot be drawn in log scale, using %g", lo, min)
		lo = min
	}

	if !(lo < hi) {
		return lo, hi, errors.Errorf("empty x range [%g, %g]", lo, hi)
	}
	return lo, hi, nil
}

// within reports whether [min, max] lies inside [lo, hi].
func within(min, max, lo, hi float64) bool {
	slack := func(x float64) float64 {
		return edgeTolerance * math.Max(1, math.Abs(x))
	}
	return min >= lo-slack(lo) && max <= hi+slack(hi)
}

// clipH1D returns histogram holding only the bins of h lying inside [lo, hi],
// or nil when there are none. Bin contents and errors are kept as they are.
func clipH1D(h *hbook.H1D, lo, hi float64) *hbook.H1D {
	bins := h.Binning.Bins

	first, last := -1, -1
	for i, bin := range bins {
		if !within(bin.XMin(), bin.XMax(), lo, hi) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return nil
	}
	if first == 0 && last == len(bins)-1 {
		return h
	}

	edges := make([]float64, 0, last-first+2)
	for i := first; i <= last; i++ {
		edges = append(edges, bins[i].XMin())
	}
	edges = append(edges, bins[last].XMax())

	clipped := hbook.NewH1DFromEdges(edges)
	copy(clipped.Binning.Bins, bins[first:last+1])
	clipped.Ann = hbook.Annotation{}
	for k, v := range h.Ann {
		clipped.Ann[k] = v
	}
	return clipped
}

// clipS2D returns the points of s whose x extent lies inside [lo, hi].
func clipS2D(s *hbook.S2D, lo, hi float64) *hbook.S2D {
	clipped := hbook.NewS2D()
	for _, pt := range s.Points() {
		if within(pt.X-pt.ErrX.Min, pt.X+pt.ErrX.Max, lo, hi) {
			clipped.Fill(pt)
		}
	}
	return clipped
}
