// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package archive reads named objects from ROOT files.
package archive

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook/rootcnv"
	"go-hep.org/x/hep/hbook"
)

// Entry describes a top-level key of an archive.
type Entry struct {
	Name  string
	Class string
	Title string
	Cycle int
}

// IsH1 reports whether the entry holds a one-dimensional histogram.
func (e Entry) IsH1() bool {
	return IsH1Class(e.Class)
}

// IsH1Class reports whether ROOT class name denotes a one-dimensional histogram (TH1F, TH1D, ...).
func IsH1Class(class string) bool {
	return strings.HasPrefix(class, "TH1")
}

// File is an opened archive.
type File struct {
	path    string
	file    *riofs.File
	entries []Entry
	keys    map[string]riofs.Key
}

// Open opens the archive under given path and indexes its top-level keys.
// When a key has several cycles only the highest one is kept.
func Open(path string) (*File, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open archive %q", path)
	}

	file := &File{
		path: path,
		file: f,
		keys: map[string]riofs.Key{},
	}

	position := map[string]int{}
	for _, key := range f.Keys() {
		entry := Entry{
			Name:  key.Name(),
			Class: key.ClassName(),
			Title: key.Title(),
			Cycle: key.Cycle(),
		}

		i, seen := position[entry.Name]
		if !seen {
			position[entry.Name] = len(file.entries)
			file.entries = append(file.entries, entry)
			file.keys[entry.Name] = key
			continue
		}
		if entry.Cycle > file.entries[i].Cycle {
			file.entries[i] = entry
			file.keys[entry.Name] = key
		}
	}
	logrus.Debugf("Archive %q holds %d key(s)", path, len(file.entries))

	return file, nil
}

// Path returns path the archive was opened from.
func (f *File) Path() string {
	return f.path
}

// Entries returns top-level keys in archive order.
func (f *File) Entries() []Entry {
	return append([]Entry{}, f.entries...)
}

// H1D reads one-dimensional histogram stored under given key name.
func (f *File) H1D(name string) (*hbook.H1D, error) {
	key, ok := f.keys[name]
	if !ok {
		return nil, errors.Errorf("no key %q in archive %q", name, f.path)
	}

	obj, err := key.Object()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q from archive %q", name, f.path)
	}

	h1, ok := obj.(rhist.H1)
	if !ok {
		return nil, errors.Errorf("%q from archive %q is a %s, not a one-dimensional histogram",
			name, f.path, key.ClassName())
	}

	h := rootcnv.H1D(h1)
	if h.Ann == nil {
		h.Ann = hbook.Annotation{}
	}
	h.Ann["name"] = name
	return h, nil
}

// Close releases the archive.
func (f *File) Close() error {
	err := f.file.Close()
	if err != nil {
		return errors.Wrapf(err, "cannot close archive %q", f.path)
	}
	return nil
}

// String implements fmt.Stringer.
func (f *File) String() string {
	return fmt.Sprintf("archive(%s)", f.path)
}
