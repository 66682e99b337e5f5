package render

import (
	"image/color"

	"github.com/sirupsen/logrus"
)

// Names of the supported colors, in cycling order.
const (
	Black  = "black"
	Red    = "red"
	Blue   = "blue"
	Yellow = "yellow"
	Grey   = "grey"
)

var (
	colorNames = []string{Black, Red, Blue, Yellow, Grey}
	colorTable = map[string]color.Color{
		Black:  color.RGBA{R: 76, G: 76, B: 76, A: 255},
		Red:    color.RGBA{R: 255, G: 76, B: 76, A: 255},
		Blue:   color.RGBA{R: 76, G: 76, B: 255, A: 255},
		Yellow: color.RGBA{R: 255, G: 255, B: 0, A: 255},
		Grey:   color.RGBA{R: 179, G: 179, B: 179, A: 255},
	}
)

// ColorNames returns supported color names in cycling order.
func ColorNames() []string {
	return append([]string{}, colorNames...)
}

// LookupColor returns the color of given name.
// Unknown names fall back to the first color of the table with a warning.
func LookupColor(name string) color.Color {
	c, ok := colorTable[name]
	if !ok {
		logrus.Warnf("Unknown color %q, using %s", name, colorNames[0])
		return colorTable[colorNames[0]]
	}
	return c
}

// Cycle hands out colors for series which have no color chosen.
// Zero value is ready to use and starts from black.
type Cycle struct {
	next int
}

// NewCycle returns cycle starting from the first color.
func NewCycle() *Cycle {
	return &Cycle{}
}

// Resolve returns color for given name. Empty name takes the next color of
// the cycle; only empty names move the cycle forward.
func (c *Cycle) Resolve(name string) color.Color {
	if name != "" {
		return LookupColor(name)
	}

	name = colorNames[c.next]
	c.next = (c.next + 1) % len(colorNames)
	return colorTable[name]
}
