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

import "strconv"

// FreshGen allocates variable names guaranteed not to collide with any
// name already present in the constraint being solved. The counter is
// seeded by the caller from the maximum name already in use, so that
// fresh-name generation is a pure function of the input (see Solve).
type FreshGen struct {
	next int
}

// NewFreshGen creates a generator whose first allocated name uses start
// as its numeric suffix.
func NewFreshGen(start int) *FreshGen { return &FreshGen{next: start} }

// NextName returns a name guaranteed distinct from every name this
// generator has returned before.
func (g *FreshGen) NextName() string {
	name := "_t" + strconv.Itoa(g.next)
	g.next++
	return name
}

// NewUnificationVar allocates a fresh unification variable.
func (g *FreshGen) NewUnificationVar() *Var { return NewUnificationVar(g.NextName()) }

// NewSkolemVar allocates a fresh skolem variable.
func (g *FreshGen) NewSkolemVar() *Var { return NewSkolemVar(g.NextName()) }
