package collection

import (
	"strings"

	"github.com/vango-dev/geom/pkg/observe"
)

// Strings is an Array of observable strings.
type Strings struct {
	*Array[*observe.Value[string]]
}

func NewStrings(values ...string) *Strings {
	items := make([]*observe.Value[string], len(values))
	for i, v := range values {
		items[i] = observe.NewValue(v)
	}
	return &Strings{Array: New(items...)}
}

// Append adds v as a new observable string and returns it.
func (s *Strings) Append(v string) *observe.Value[string] {
	item := observe.NewValue(v)
	s.Push(item)
	return item
}

// Values returns the current string of every element.
func (s *Strings) Values() []string {
	out := make([]string, 0, s.Len())
	s.Each(func(_ int, item *observe.Value[string]) {
		out = append(out, item.Get())
	})
	return out
}

func (s *Strings) Join(sep string) string {
	return strings.Join(s.Values(), sep)
}
