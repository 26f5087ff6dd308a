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

package constraint

import "github.com/disco-lang/discoinfer/types"

// Rel is the relation of a SimpleConstraint.
type Rel int

const (
	RelEq Rel = iota
	RelSub
)

func (r Rel) String() string {
	if r == RelSub {
		return "<:"
	}
	return "="
}

// Simple is a SimpleConstraint: either t1 = t2 or t1 <: t2.
type Simple struct {
	Rel    Rel
	T1, T2 types.Type
}

// IsAtomic reports whether both sides of s are Atoms.
func (s Simple) IsAtomic() bool {
	_, ok1 := s.T1.(types.Atom)
	_, ok2 := s.T2.(types.Atom)
	return ok1 && ok2
}

// Alternative is one element of decompose's output: a sort map together
// with the simple constraints it was decomposed into.
type Alternative struct {
	Sorts   types.SortMap
	Simples []Simple
}
