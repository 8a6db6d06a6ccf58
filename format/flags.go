// Package format provides small immutable bitmask flag sets.
package format

import (
	"fmt"
	"strings"
)

// Flag is an enumeration whose values are consecutive ordinals starting at zero.
type Flag interface {
	~uint8
	fmt.Stringer

	// Cardinality returns the number of values the enumeration defines.
	Cardinality() int
}

// Flags is a set of E values packed into a bitmask.
// The zero value is the empty set.
type Flags[E Flag] uint32

// Of returns the set holding the given flags.
func Of[E Flag](flags ...E) Flags[E] {
	var f Flags[E]
	for _, flag := range flags {
		f = f.With(flag)
	}
	return f
}

func bitOf[E Flag](flag E) Flags[E] {
	return Flags[E](1) << flag
}

func (f Flags[E]) Contains(flag E) bool {
	return f&bitOf(flag) != 0
}

// ContainsAny reports whether f and other share at least one flag.
func (f Flags[E]) ContainsAny(other Flags[E]) bool {
	return f&other != 0
}

func (f Flags[E]) With(flag E) Flags[E] {
	return f | bitOf(flag)
}

func (f Flags[E]) Without(flag E) Flags[E] {
	return f &^ bitOf(flag)
}

// Complement returns every flag of E that is not in f.
func (f Flags[E]) Complement() Flags[E] {
	var zero E
	all := Flags[E](1)<<zero.Cardinality() - 1
	return ^f & all
}

// Empty reports whether no flag is set.
func (f Flags[E]) Empty() bool {
	return f == 0
}

// ForbidAll returns an error unless f is empty.
func (f Flags[E]) ForbidAll() error {
	if f != 0 {
		return notAllowed(f)
	}
	return nil
}

// ForbidAllBut returns an error if f holds anything other than flag.
func (f Flags[E]) ForbidAllBut(flag E) error {
	return f.Without(flag).ForbidAll()
}

// Forbid returns an error if f holds flag.
func (f Flags[E]) Forbid(flag E) error {
	if f.Contains(flag) {
		return notAllowed(Of(flag))
	}
	return nil
}

func (f Flags[E]) String() string {
	var zero E

	names := make([]string, 0, zero.Cardinality())
	for i := 0; i < zero.Cardinality(); i++ {
		if f.Contains(E(i)) {
			names = append(names, E(i).String())
		}
	}

	return "[" + strings.Join(names, ",") + "]"
}

func notAllowed[E Flag](f Flags[E]) error {
	return fmt.Errorf("flags %s not allowed here", f)
}
