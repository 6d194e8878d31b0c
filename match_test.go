package enumflags

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		match    Match[opt]
		flags    Flags[opt]
		expected bool
	}{
		{name: "all contained", match: MatchAll(New(optA, optB)), flags: New(optA, optB, optC), expected: true},
		{name: "all missing one", match: MatchAll(New(optA, optD)), flags: New(optA, optB, optC), expected: false},
		{name: "any overlap", match: MatchAny(New(optC, optD)), flags: New(optA, optB, optC), expected: true},
		{name: "any disjoint", match: MatchAny(New(optD, optE)), flags: New(optA, optB, optC), expected: false},
		{name: "none disjoint", match: MatchNone(New(optD, optE)), flags: New(optA, optB, optC), expected: true},
		{name: "none overlap", match: MatchNone(New(optC)), flags: New(optA, optB, optC), expected: false},
		{name: "exact equal", match: MatchExact(New(optA, optB)), flags: New(optB, optA), expected: true},
		{name: "exact superset", match: MatchExact(New(optA)), flags: New(optA, optB), expected: false},
		{name: "empty on empty", match: MatchEmpty[opt](), flags: New[opt](), expected: true},
		{name: "empty on non-empty", match: MatchEmpty[opt](), flags: New(optA), expected: false},
		{name: "not", match: MatchNot(MatchAny(New(optD))), flags: New(optA), expected: true},
		{name: "and", match: MatchAnd(MatchAll(New(optA)), MatchNone(New(optD))), flags: New(optA, optB), expected: true},
		{name: "and short", match: MatchAnd(MatchAll(New(optD)), MatchAll(New(optA))), flags: New(optA, optB), expected: false},
		{name: "or", match: MatchOr(MatchAll(New(optD)), MatchAll(New(optB))), flags: New(optA, optB), expected: true},
		{name: "or none", match: MatchOr(MatchAll(New(optD)), MatchAll(New(optE))), flags: New(optA, optB), expected: false},
		{name: "and empty", match: MatchAnd[opt](), flags: New(optA), expected: true},
		{name: "or empty", match: MatchOr[opt](), flags: New(optA), expected: false},
	}

	for _, test := range tests {
		if actual := test.flags.Is(test.match); actual != test.expected {
			t.Errorf("%s: expected %v for %b", test.name, test.expected, test.flags.Bits())
		}
	}
}
