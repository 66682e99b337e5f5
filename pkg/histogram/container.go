package histogram

import (
	"github.com/pkg/errors"
	"github.com/rootplot/rootplot/pkg/archive"
	"github.com/rootplot/rootplot/pkg/utils/err_collection"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/hbook"
)

// Renderer draws and exports a single group of histograms.
type Renderer interface {
	Render(name string, series []*hbook.H1D) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(name string, series []*hbook.H1D) error

// Render implements Renderer.
func (f RendererFunc) Render(name string, series []*hbook.H1D) error {
	return f(name, series)
}

// Container grabs objects of one kind from archives and shows them.
// One-dimensional histograms are the only kind supported.
type Container interface {
	// Grab collects objects matching the pattern from files, in file order.
	Grab(files []string, pattern string) error
	// Show renders every collected group.
	Show(renderer Renderer) error
	// Groups returns the collected groups.
	Groups() *Groups

	kind() string
}

// HistogramContainer collects one-dimensional histograms.
type HistogramContainer struct {
	groups *Groups
}

// NewHistogramContainer returns empty container.
func NewHistogramContainer() *HistogramContainer {
	return &HistogramContainer{groups: NewGroups()}
}

func (c *HistogramContainer) kind() string {
	return "TH1"
}

// Groups implements Container.
func (c *HistogramContainer) Groups() *Groups {
	return c.groups
}

// Grab implements Container.
// An archive which cannot be read leaves the container empty and the error is returned.
// No match at all is not an error: it is logged and the container stays empty.
func (c *HistogramContainer) Grab(files []string, pattern string) error {
	c.groups = NewGroups()

	matcher, err := NewMatcher(pattern)
	if err != nil {
		return err
	}

	groups := NewGroups()
	for _, filename := range files {
		err := grabFile(groups, filename, matcher)
		if err != nil {
			return err
		}
	}

	if groups.Empty() {
		logrus.Errorf("No histogram matching %q found in %d file(s)", matcher, len(files))
		return nil
	}

	c.groups = groups
	return nil
}

func grabFile(groups *Groups, filename string, matcher *Matcher) error {
	file, err := archive.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	found := 0
	for _, entry := range file.Entries() {
		if !matcher.Match(entry.Name) {
			continue
		}
		if !entry.IsH1() {
			logrus.Debugf("Skipping %q from %q: %s is not a one-dimensional histogram",
				entry.Name, filename, entry.Class)
			continue
		}

		h, err := file.H1D(entry.Name)
		if err != nil {
			return errors.Wrapf(err, "cannot grab histogram %q", entry.Name)
		}
		groups.Add(entry.Name, h)
		found++
	}
	logrus.Debugf("Grabbed %d histogram(s) from %q", found, filename)

	return nil
}

// Show implements Container. A group which fails does not stop the others;
// the errors are combined.
func (c *HistogramContainer) Show(renderer Renderer) error {
	if c.groups.Empty() {
		logrus.Error("No histograms have been stored!")
		return nil
	}

	var errs errcollection.ErrorCollection
	for _, name := range c.groups.Names() {
		logrus.Debugf("Plotting histogram %s", name)
		err := renderer.Render(name, c.groups.Series(name))
		if err != nil {
			logrus.Errorf("Histogram %q: %v", name, err)
			errs.Add(errors.Wrapf(err, "histogram %q", name))
		}
	}
	return errs.GetErrIfAny()
}
