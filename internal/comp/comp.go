// Package comp defines tensor components: the named axes a tensor kind is made of.
//
// A component is any type with a Name method. A component whose type also has a
// Size method declares its extent up front; a component without one is dynamic,
// and its extent is supplied when a tensor is created. The check is structural,
// so no registration or embedding is required:
//
//	type Col struct{}
//
//	func (Col) Name() string { return "col" }
//	func (Col) Size() int    { return 3 }
//
//	type Site struct{}
//
//	func (Site) Name() string { return "site" } // dynamic
package comp

import (
	"errors"
	"fmt"
	"strings"
)

// Dynamic is the size reported for components whose extent is only known at run time.
const Dynamic = -1

// Component identifies one axis of a tensor kind. Two components are the same
// axis if and only if their names are equal.
type Component interface {
	Name() string
}

// Sizer is implemented by components with a fixed extent.
type Sizer interface {
	Size() int
}

// ErrInvalid is returned by Validate for malformed components.
var ErrInvalid = errors.New("invalid component")

// HasSize reports whether c declares a fixed extent.
func HasSize(c Component) bool {
	_, ok := c.(Sizer)
	return ok
}

// IsDynamic reports whether the extent of c is only known at run time.
func IsDynamic(c Component) bool {
	return !HasSize(c)
}

// SizeOf returns the declared extent of c, or Dynamic.
func SizeOf(c Component) int {
	if s, ok := c.(Sizer); ok {
		return s.Size()
	}
	return Dynamic
}

// SameClass reports whether a and b are both static or both dynamic.
func SameClass(a, b Component) bool {
	return HasSize(a) == HasSize(b)
}

// Describe renders c as name[size] or name[dyn].
func Describe(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if s, ok := c.(Sizer); ok {
		return fmt.Sprintf("%s[%d]", c.Name(), s.Size())
	}
	return c.Name() + "[dyn]"
}

// Validate checks that c is usable as an axis. GroupSep is reserved for the
// names of merged groups and may not appear in any other name.
func Validate(c Component) error {
	if c == nil {
		return fmt.Errorf("%w: nil component", ErrInvalid)
	}
	if c.Name() == "" {
		return fmt.Errorf("%w: %T has an empty name", ErrInvalid, c)
	}
	if _, grouped := c.(Grouped); !grouped && strings.Contains(c.Name(), GroupSep) {
		return fmt.Errorf("%w: name %q contains the group separator %q", ErrInvalid, c.Name(), GroupSep)
	}
	if s, ok := c.(Sizer); ok && s.Size() <= 0 {
		return fmt.Errorf("%w: %s declares size %d (must be > 0)", ErrInvalid, c.Name(), s.Size())
	}
	return nil
}

type staticComp struct {
	name string
	size int
}

func (c staticComp) Name() string { return c.name }
func (c staticComp) Size() int    { return c.size }

type dynamicComp struct {
	name string
}

func (c dynamicComp) Name() string { return c.name }

// Static returns an ad-hoc component with a fixed extent.
func Static(name string, size int) Component {
	return staticComp{name: name, size: size}
}

// Dyn returns an ad-hoc dynamic component.
func Dyn(name string) Component {
	return dynamicComp{name: name}
}
