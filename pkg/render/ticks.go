package render

import "gonum.org/v1/plot"

// unlabeledTicks keeps tick marks of the wrapped ticker but drops their labels.
type unlabeledTicks struct {
	plot.Ticker
}

// Ticks implements plot.Ticker.
func (t unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
