package histogram

import (
	"go-hep.org/x/hep/hbook"
)

// Groups maps histogram names to the histograms of that name found in
// consecutive archives. Names keep the order in which they were first seen.
// The first histogram of every group is the reference one.
type Groups struct {
	names  []string
	series map[string][]*hbook.H1D
}

// NewGroups returns empty Groups.
func NewGroups() *Groups {
	return &Groups{series: map[string][]*hbook.H1D{}}
}

// Add appends histogram to the group of given name.
func (g *Groups) Add(name string, h *hbook.H1D) {
	if _, ok := g.series[name]; !ok {
		g.names = append(g.names, name)
	}
	g.series[name] = append(g.series[name], h)
}

// Names returns group names in discovery order.
func (g *Groups) Names() []string {
	return append([]string{}, g.names...)
}

// Series returns histograms of given name in archive order.
func (g *Groups) Series(name string) []*hbook.H1D {
	return g.series[name]
}

// Len returns number of groups.
func (g *Groups) Len() int {
	return len(g.names)
}

// Empty is true when no histogram was stored.
func (g *Groups) Empty() bool {
	return len(g.names) == 0
}
