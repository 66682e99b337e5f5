package render

// Options drives how a group of histograms is drawn.
// Nil bounds are taken from data.
type Options struct {
	ShowRatio     bool
	LogX          bool
	LogY          bool
	FillReference bool

	XMin *float64
	XMax *float64
	YMin *float64
	YMax *float64

	// Colors are given per series position. Missing or empty ones are cycled.
	Colors []string
}

func (o Options) colorName(i int) string {
	if i < len(o.Colors) {
		return o.Colors[i]
	}
	return ""
}
