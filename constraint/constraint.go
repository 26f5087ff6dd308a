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

// Package constraint defines the constraint grammar the solver consumes
// and the pure decomposition transform that reduces it to alternatives of
// atomic subtyping constraints.
package constraint

import "github.com/disco-lang/discoinfer/types"

// Constraint is the input grammar: Sub, Eq, Qual, And, Or, All, True.
type Constraint interface {
	isConstraint()
}

// Sub is a subtyping constraint t1 <: t2.
type Sub struct {
	T1, T2 types.Type
}

// Eq is an equality constraint t1 = t2.
type Eq struct {
	T1, T2 types.Type
}

// Qual asserts that t must satisfy qualifier q.
type Qual struct {
	Q types.Qualifier
	T types.Type
}

// And is the conjunction of a list of constraints.
type And struct {
	Cs []Constraint
}

// Or is the disjunction of a list of constraints; solving backtracks
// across alternatives.
type Or struct {
	Cs []Constraint
}

// All is a universally quantified constraint; the bound names are
// instantiated as fresh skolems upon decomposition.
type All struct {
	Vars []string
	Body Constraint
}

// TrueConstraint is the trivially satisfied constraint.
type TrueConstraint struct{}

// True is the single TrueConstraint value.
var True = TrueConstraint{}

func (Sub) isConstraint()            {}
func (Eq) isConstraint()             {}
func (Qual) isConstraint()           {}
func (And) isConstraint()            {}
func (Or) isConstraint()             {}
func (All) isConstraint()            {}
func (TrueConstraint) isConstraint() {}
