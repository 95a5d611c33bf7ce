package mech

import (
	"fmt"
	"sort"

	"github.com/san-kum/ventsim/internal/vent"
)

var variants = map[string]func() vent.Mechanism{
	"linkage": func() vent.Mechanism { return NewLinkage() },
	"slider":  func() vent.Mechanism { return NewSlider() },
}

// New returns a fresh mechanism for the named variant.
func New(name string) (vent.Mechanism, error) {
	fn, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown mechanism variant: %s", name)
	}
	return fn(), nil
}

// Names lists the registered variants in stable order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
