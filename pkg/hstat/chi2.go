package hstat

import (
	"fmt"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/stat/distuv"
)

// Chi2 is the result of the chi-square compatibility test of two histograms.
type Chi2 struct {
	Value float64
	NDF   int
}

// PerNDF returns chi2/ndf, or 0 when there are no degrees of freedom.
func (c Chi2) PerNDF() float64 {
	if c.NDF <= 0 {
		return 0
	}
	return c.Value / float64(c.NDF)
}

// PValue returns the probability of a chi-square at least as large as the observed one.
func (c Chi2) PValue() float64 {
	if c.NDF <= 0 {
		return 1
	}
	return distuv.ChiSquared{K: float64(c.NDF)}.Survival(c.Value)
}

func (c Chi2) String() string {
	return fmt.Sprintf("chi2/ndf = %g/%d", c.Value, c.NDF)
}

// Chi2Test computes sum (a_i - b_i)^2 / (sigma_a^2 + sigma_b^2) over the bins
// with non-zero combined variance. The number of degrees of freedom is the
// number of used bins minus one.
func Chi2Test(a, b *hbook.H1D) (Chi2, error) {
	err := CheckBinning(a, b)
	if err != nil {
		return Chi2{}, errors.Wrap(err, "cannot compare histograms")
	}

	var (
		chi2 float64
		used int
	)
	for i, abin := range a.Binning.Bins {
		bbin := b.Binning.Bins[i]

		variance := abin.SumW2() + bbin.SumW2()
		if variance == 0 {
			continue
		}
		diff := abin.SumW() - bbin.SumW()
		chi2 += diff * diff / variance
		used++
	}

	ndf := used - 1
	if ndf < 0 {
		ndf = 0
	}
	return Chi2{Value: chi2, NDF: ndf}, nil
}
