package hstat

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
)

// binsTolerance is the relative difference allowed between bin edges of compared histograms.
const binsTolerance = 1e-9

// CheckBinning returns an error when both histograms do not share the same bins.
func CheckBinning(a, b *hbook.H1D) error {
	if a == nil || b == nil {
		return errors.New("histogram is missing")
	}

	abins, bbins := a.Binning.Bins, b.Binning.Bins
	if len(abins) != len(bbins) {
		return errors.Errorf("number of bins differs: %d != %d", len(abins), len(bbins))
	}
	for i := range abins {
		if !sameEdge(abins[i].XMin(), bbins[i].XMin()) || !sameEdge(abins[i].XMax(), bbins[i].XMax()) {
			return errors.Errorf("bin %d differs: [%v, %v) != [%v, %v)",
				i, abins[i].XMin(), abins[i].XMax(), bbins[i].XMin(), bbins[i].XMax())
		}
	}
	return nil
}

func sameEdge(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= binsTolerance*scale
}

// Ratio divides num by den bin by bin.
// Uncertainties are propagated as sigma_r^2 = (sigma_n^2 d^2 + sigma_d^2 n^2) / d^4.
// Bins with an empty denominator give no point.
func Ratio(num, den *hbook.H1D) (*hbook.S2D, error) {
	err := CheckBinning(num, den)
	if err != nil {
		return nil, errors.Wrap(err, "cannot divide histograms")
	}

	s := hbook.NewS2D()
	for i, nbin := range num.Binning.Bins {
		dbin := den.Binning.Bins[i]

		d := dbin.SumW()
		if d == 0 {
			continue
		}
		n := nbin.SumW()
		d2 := d * d
		variance := (nbin.SumW2()*d2 + dbin.SumW2()*n*n) / (d2 * d2)
		sigma := math.Sqrt(variance)
		halfWidth := 0.5 * nbin.XWidth()

		s.Fill(hbook.Point2D{
			X:    nbin.XMid(),
			Y:    n / d,
			ErrX: hbook.Range{Min: halfWidth, Max: halfWidth},
			ErrY: hbook.Range{Min: sigma, Max: sigma},
		})
	}

	return s, nil
}

// Extrema returns the lowest and highest ratio value.
// ok is false when there are no points.
func Extrema(s *hbook.S2D) (min, max float64, ok bool) {
	if s == nil || s.Len() == 0 {
		return 0, 0, false
	}

	ys := make(stats.Float64Data, 0, s.Len())
	for _, pt := range s.Points() {
		ys = append(ys, pt.Y)
	}

	min, err := stats.Min(ys)
	if err != nil {
		return 0, 0, false
	}
	max, err = stats.Max(ys)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}
