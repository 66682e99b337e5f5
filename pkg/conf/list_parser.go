package conf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListValue is a custom kingpin parser which resolves flag's parameters which consists of
// string slice delimited by `stringListDelimiter`.
// For instance for delimiter = "," and flag defined like this:
// `flag = StringList(kingpin.Flag("flag_name", "help").Short("f"))`
//
// When user would specify options: `-f=A,B,C -f=D,E,F` our `flag` variable would be a slice with
// A,B,C,D,E,F items. Empty items are dropped.
type StringListValue []string

// Set parsed the input string and append that as a slice. Implements kingpin.Value.
func (s *StringListValue) Set(value string) error {
	for _, item := range strings.Split(value, stringListDelimiter) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		*s = append(*s, item)
	}
	return nil
}

// Get returns underlying slice. Implements kingpin.Getter.
func (s *StringListValue) Get() interface{} {
	return []string(*s)
}

// String returns string value from StringListValue. Implements kingpin.Value.
func (s *StringListValue) String() string {
	return strings.Join(*s, stringListDelimiter)
}

// IsCumulative implements optional interface (kingpin.repeatableFlag) for flags that can be repeated.
func (s *StringListValue) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags and arguments.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListValue)(target))
	return
}

// OptionalFloatValue is a kingpin parser for float flags which remembers
// whether the value was given at all.
type OptionalFloatValue struct {
	value float64
	set   bool
}

// Set parses the float. Implements kingpin.Value.
func (f *OptionalFloatValue) Set(value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return errors.Wrapf(err, "%q is not a valid number", value)
	}
	f.value = v
	f.set = true
	return nil
}

// Get returns *float64, nil when the value was not set. Implements kingpin.Getter.
func (f *OptionalFloatValue) Get() interface{} {
	return f.Pointer()
}

// Pointer returns a copy of the value or nil when it was not set.
func (f *OptionalFloatValue) Pointer() *float64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// String implements kingpin.Value.
func (f *OptionalFloatValue) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}
