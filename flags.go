// Type-safe bitmask flags over enumeration types with an unsigned
// underlying representation. A Flags value behaves like a plain integer
// with extra type safety: flags from unrelated enumerations cannot mix.
package enumflags

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// A bitmask over the enumeration type E, holding zero or more of its flags
// combined into a single value. Each flag is expected to occupy a distinct
// single bit (see Bit); this is a convention, not enforced - two flag names
// sharing a bit are indistinguishable from the mask's viewpoint.
//
// The zero value is the empty set. Flags is a plain value type: copy it
// freely, compare it with == and !=, and synchronize externally if shared
// between goroutines, exactly as you would a primitive integer.
type Flags[E constraints.Unsigned] struct {
	bits E
}

// Returns the flag value occupying the given bit position, 1 << shift.
// Use it to define enumeration constants without manual shifting.
func Bit[E constraints.Unsigned](shift uint) E {
	return E(1) << shift
}

// Creates a set holding the union of the given flags. With no arguments the
// set is empty. Duplicates are harmless and order does not matter.
func New[E constraints.Unsigned](flags ...E) Flags[E] {
	var set Flags[E]
	for _, flag := range flags {
		set.bits |= flag
	}
	return set
}

// Creates a set holding the union of the flags in the slice.
func Of[E constraints.Unsigned](flags []E) Flags[E] {
	return New(flags...)
}

// Creates a set holding the union of the flags produced by the sequence.
// The sequence is consumed once; order does not matter and duplicates are
// harmless.
func Collect[E constraints.Unsigned](flags iter.Seq[E]) Flags[E] {
	var set Flags[E]
	for flag := range flags {
		set.bits |= flag
	}
	return set
}

// Creates a set directly from an underlying bitmask value, without any
// validation against known flags. This is the escape hatch for masks stored
// or received externally; bits that correspond to no named flag are kept
// as-is.
func FromBits[E constraints.Unsigned](bits E) Flags[E] {
	return Flags[E]{bits: bits}
}

// Removes all flags from the set and returns it.
func (f *Flags[E]) Clear() *Flags[E] {
	f.bits = 0
	return f
}

// Sets every flag present in other, leaving all other bits untouched, and
// returns the set.
func (f *Flags[E]) Add(other Flags[E]) *Flags[E] {
	f.bits |= other.bits
	return f
}

// Clears every flag present in other, leaving all other bits untouched, and
// returns the set. Removing a flag that is not set is a no-op.
func (f *Flags[E]) Remove(other Flags[E]) *Flags[E] {
	f.bits &^= other.bits
	return f
}

// Replaces the set's contents wholesale with other and returns the set.
// This is full replacement, not intersection: every previously held flag is
// discarded, whether or not other holds it.
func (f *Flags[E]) Assign(other Flags[E]) *Flags[E] {
	f.bits = other.bits
	return f
}

// Flips every flag present in other and returns the set.
func (f *Flags[E]) Toggle(other Flags[E]) *Flags[E] {
	f.bits ^= other.bits
	return f
}

// Exchanges the full contents of the two sets.
func (f *Flags[E]) Swap(other *Flags[E]) {
	f.bits, other.bits = other.bits, f.bits
}

// Whether the given flag is set. The test is (bits & flag) != 0, so for a
// multi-bit composite value it reports true on partial overlap. Use HasAll
// when full containment of a composite is required.
func (f Flags[E]) Has(flag E) bool {
	return f.bits&flag != 0
}

// Whether every flag in other is also set. Vacuously true when other is
// empty.
func (f Flags[E]) HasAll(other Flags[E]) bool {
	return f.bits&other.bits == other.bits
}

// Whether at least one flag in other is set. False when other is empty.
func (f Flags[E]) HasAny(other Flags[E]) bool {
	return f.bits&other.bits != 0
}

// Whether the set holds any flags at all.
func (f Flags[E]) Any() bool {
	return f.bits != 0
}

// Returns a new set holding this set's flags combined with other's. The
// receiver is unchanged.
func (f Flags[E]) Union(other Flags[E]) Flags[E] {
	return Flags[E]{bits: f.bits | other.bits}
}

// The underlying bitmask value, verbatim.
func (f Flags[E]) Bits() E {
	return f.bits
}

// Whether the set satisfies the given match.
func (f Flags[E]) Is(match Match[E]) bool {
	return match(f)
}
