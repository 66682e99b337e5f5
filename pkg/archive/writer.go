package archive

import (
	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
)

// Object is a named value to be stored in an archive.
type Object struct {
	Name  string
	Value root.Object
}

// H1 wraps one-dimensional histogram into archive object.
func H1(name string, h *hbook.H1D) Object {
	return Object{Name: name, Value: rhist.NewH1DFrom(h)}
}

// H2 wraps two-dimensional histogram into archive object.
func H2(name string, h *hbook.H2D) Object {
	return Object{Name: name, Value: rhist.NewH2DFrom(h)}
}

// Write creates archive under given path with given objects, in order.
// Existing file is overwritten.
func Write(path string, objects ...Object) (err error) {
	f, err := groot.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create archive %q", path)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "cannot close archive %q", path)
		}
	}()

	for _, object := range objects {
		err = f.Put(object.Name, object.Value)
		if err != nil {
			return errors.Wrapf(err, "cannot write %q to archive %q", object.Name, path)
		}
	}
	return nil
}
