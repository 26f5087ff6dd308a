// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

// Qualifier is an atomic predicate on types, like `num` or `finite`.
type Qualifier int

const (
	QualNum Qualifier = iota
	QualSub
	QualFinite
	QualBool
	QualEnum
	QualContainer
	QualOrd

	numQualifiers // sentinel, must stay last
)

var qualNames = [...]string{"num", "sub", "finite", "bool", "enum", "container", "ord"}

func (q Qualifier) String() string {
	if int(q) < 0 || int(q) >= len(qualNames) {
		return "qual?"
	}
	return qualNames[q]
}

// Sort is a set of qualifiers: the required interface a variable or type
// must satisfy. The empty Sort (TopSort) is the least restrictive sort.
type Sort uint16

const TopSort Sort = 0

// With returns the sort obtained by adding q.
func (s Sort) With(q Qualifier) Sort { return s | (1 << uint(q)) }

// Has reports whether q is a member of s.
func (s Sort) Has(q Qualifier) bool { return s&(1<<uint(q)) != 0 }

// Union returns the sort containing every qualifier in s or other.
func (s Sort) Union(other Sort) Sort { return s | other }

// IsTop reports whether s carries no qualifiers.
func (s Sort) IsTop() bool { return s == TopSort }

// Qualifiers lists the members of s in a fixed, deterministic order.
func (s Sort) Qualifiers() []Qualifier {
	var qs []Qualifier
	for q := Qualifier(0); q < numQualifiers; q++ {
		if s.Has(q) {
			qs = append(qs, q)
		}
	}
	return qs
}

func (s Sort) String() string {
	qs := s.Qualifiers()
	if len(qs) == 0 {
		return "{}"
	}
	out := "{"
	for i, q := range qs {
		if i > 0 {
			out += ","
		}
		out += q.String()
	}
	return out + "}"
}

// HasQual is the declarative table of which base atoms satisfy which
// qualifier.
func HasQual(b BaseAtom, q Qualifier) bool {
	switch q {
	case QualNum:
		return b == Nat || b == Int || b == Rational || b == Real
	case QualSub: // admits subtraction: not Nat
		return b == Int || b == Rational || b == Real
	case QualFinite: // finitely many inhabitants
		return b == Bool || b == Unit || b == Char
	case QualBool:
		return b == Bool
	case QualEnum: // discrete, enumerable atoms
		return b == Bool || b == Unit || b == Char || b == Nat
	case QualContainer:
		return false // no base atom is a container
	case QualOrd: // every base atom admits a total order
		return true
	}
	return false
}

// HasSort reports whether b satisfies every qualifier in s.
func HasSort(b BaseAtom, s Sort) bool {
	for _, q := range s.Qualifiers() {
		if !HasQual(b, q) {
			return false
		}
	}
	return true
}

// canonicalBases lists every base atom in a fixed, deterministic order used
// to pick a representative inhabitant of a sort.
var canonicalBases = []BaseAtom{Nat, Int, Rational, Real, Bool, Unit, Char}

// PickSortBase returns a canonical inhabitant of s: the first base atom (in
// a fixed search order) that satisfies every qualifier in s.
func PickSortBase(s Sort) (BaseAtom, bool) {
	for _, b := range canonicalBases {
		if HasSort(b, s) {
			return b, true
		}
	}
	return 0, false
}
