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

// Dir selects a direction through the base-atom subtype order.
type Dir int

const (
	DirSuper Dir = iota
	DirSub
)

// baseOrder lists the numeric tower in increasing subtype order. Atoms not
// listed here (Bool, Unit, Char) are incomparable singletons.
var baseOrder = []BaseAtom{Nat, Int, Rational, Real}

func orderOf(b BaseAtom) (int, bool) {
	for i, a := range baseOrder {
		if a == b {
			return i, true
		}
	}
	return 0, false
}

// SubBase reports whether a <=b b holds in the fixed base-atom order.
func SubBase(a, b BaseAtom) bool {
	if a == b {
		return true
	}
	oa, oka := orderOf(a)
	ob, okb := orderOf(b)
	return oka && okb && oa <= ob
}

// LUBBase returns the least upper bound of two base atoms, if one exists.
func LUBBase(a, b BaseAtom) (BaseAtom, bool) {
	if a == b {
		return a, true
	}
	oa, oka := orderOf(a)
	ob, okb := orderOf(b)
	if !oka || !okb {
		return 0, false
	}
	if oa >= ob {
		return a, true
	}
	return b, true
}

// GLBBase returns the greatest lower bound of two base atoms, if one exists.
func GLBBase(a, b BaseAtom) (BaseAtom, bool) {
	if a == b {
		return a, true
	}
	oa, oka := orderOf(a)
	ob, okb := orderOf(b)
	if !oka || !okb {
		return 0, false
	}
	if oa <= ob {
		return a, true
	}
	return b, true
}

// DirTypes returns every base atom that is a supertype (DirSuper) or
// subtype (DirSub) of b, inclusive of b itself, in order from b outward.
func DirTypes(dir Dir, b BaseAtom) []BaseAtom {
	order, ok := orderOf(b)
	if !ok {
		return []BaseAtom{b}
	}
	var out []BaseAtom
	if dir == DirSuper {
		for i := order; i < len(baseOrder); i++ {
			out = append(out, baseOrder[i])
		}
	} else {
		for i := order; i >= 0; i-- {
			out = append(out, baseOrder[i])
		}
	}
	return out
}
