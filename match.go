package enumflags

import "golang.org/x/exp/constraints"

// A reusable predicate over a flag set, built with the Match* functions and
// applied with Flags.Is.
type Match[E constraints.Unsigned] func(flags Flags[E]) bool

func MatchAll[E constraints.Unsigned](test Flags[E]) Match[E] {
	return func(flags Flags[E]) bool {
		return flags.HasAll(test)
	}
}

func MatchAny[E constraints.Unsigned](test Flags[E]) Match[E] {
	return func(flags Flags[E]) bool {
		return flags.HasAny(test)
	}
}

func MatchNone[E constraints.Unsigned](test Flags[E]) Match[E] {
	return func(flags Flags[E]) bool {
		return !flags.HasAny(test)
	}
}

func MatchExact[E constraints.Unsigned](test Flags[E]) Match[E] {
	return func(flags Flags[E]) bool {
		return flags == test
	}
}

func MatchEmpty[E constraints.Unsigned]() Match[E] {
	return func(flags Flags[E]) bool {
		return !flags.Any()
	}
}

func MatchNot[E constraints.Unsigned](not Match[E]) Match[E] {
	return func(flags Flags[E]) bool {
		return !not(flags)
	}
}

func MatchAnd[E constraints.Unsigned](ands ...Match[E]) Match[E] {
	return func(flags Flags[E]) bool {
		for _, and := range ands {
			if !and(flags) {
				return false
			}
		}
		return true
	}
}

func MatchOr[E constraints.Unsigned](ors ...Match[E]) Match[E] {
	return func(flags Flags[E]) bool {
		for _, or := range ors {
			if or(flags) {
				return true
			}
		}
		return false
	}
}
