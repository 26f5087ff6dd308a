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

// Package types defines the type language solved over by the inference
// core: atoms (base types and variables), constructor applications, and
// user type-synonym references.
package types

import "fmt"

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

// Atom is a leaf of the type language: a base atom or a type-variable.
type Atom interface {
	Type
	isAtom()
}

// BaseAtom is a concrete numeric or primitive base type, drawn from a
// fixed, ordered enumeration.
type BaseAtom int

const (
	Nat BaseAtom = iota
	Int
	Rational
	Real
	Bool
	Unit
	Char
)

var baseNames = [...]string{"N", "Z", "Q", "R", "Bool", "Unit", "Char"}

func (b BaseAtom) String() string {
	if int(b) < 0 || int(b) >= len(baseNames) {
		return fmt.Sprintf("BaseAtom(%d)", int(b))
	}
	return baseNames[b]
}

func (b BaseAtom) TypeName() string { return "Base:" + b.String() }
func (BaseAtom) isAtom()            {}

// VarKind tags a type-variable as flexible (unification) or rigid (skolem).
//
// The distinction is a tag, not a subtype: both kinds share one
// representation so substitutions and sort maps don't need parallel types.
type VarKind int

const (
	UnificationVar VarKind = iota
	SkolemVar
)

// Var is a type-variable, either solvable (unification) or rigid (skolem).
type Var struct {
	Name string
	Kind VarKind
}

// NewUnificationVar creates a flexible type-variable with the given name.
func NewUnificationVar(name string) *Var { return &Var{Name: name, Kind: UnificationVar} }

// NewSkolemVar creates a rigid type-variable with the given name.
func NewSkolemVar(name string) *Var { return &Var{Name: name, Kind: SkolemVar} }

func (v *Var) TypeName() string    { return "Var" }
func (v *Var) isAtom()             {}
func (v *Var) IsSkolem() bool      { return v.Kind == SkolemVar }
func (v *Var) IsUnification() bool { return v.Kind == UnificationVar }

func (v *Var) String() string {
	if v.Kind == SkolemVar {
		return "skolem " + v.Name
	}
	return v.Name
}

// Ctor enumerates the fixed set of non-synonym type constructors.
type Ctor int

const (
	CtorArrow Ctor = iota
	CtorPair
	CtorSum
	CtorList
)

var ctorNames = [...]string{"arrow", "pair", "sum", "list"}

func (c Ctor) String() string {
	if int(c) < 0 || int(c) >= len(ctorNames) {
		return fmt.Sprintf("Ctor(%d)", int(c))
	}
	return ctorNames[c]
}

// Variance is the policy by which a constructor's argument position
// propagates subtyping.
type Variance int

const (
	Covariant Variance = iota
	Contravariant
)

// arity and per-argument variance are static, indexed by Ctor.
var ctorArity = [...]int{CtorArrow: 2, CtorPair: 2, CtorSum: 2, CtorList: 1}

var ctorVariance = [...][]Variance{
	CtorArrow: {Contravariant, Covariant},
	CtorPair:  {Covariant, Covariant},
	CtorSum:   {Covariant, Covariant},
	CtorList:  {Covariant},
}

// Arity returns the fixed argument count for a constructor.
func (c Ctor) Arity() int { return ctorArity[c] }

// ArgVariance returns the variance of each argument position for a constructor.
func (c Ctor) ArgVariance() []Variance { return ctorVariance[c] }

// Con is a constructor application: C(t1, ..., tn).
type Con struct {
	Ctor Ctor
	Args []Type
}

func (c *Con) TypeName() string { return "Con:" + c.Ctor.String() }

func (c *Con) String() string {
	s := c.Ctor.String() + "("
	for i, a := range c.Args {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(a)
	}
	return s + ")"
}

// Syn is a reference to a user-declared type-synonym definition, expanded
// on demand by consulting the synonym table passed to Solve.
type Syn struct {
	Name string
}

func (s *Syn) TypeName() string { return "Syn:" + s.Name }
func (s *Syn) String() string   { return s.Name }

// FreeVars collects the names of unification variables appearing in t.
// Skolem variables are not considered free (they are rigid, not solvable).
func FreeVars(t Type) map[string]bool {
	fv := make(map[string]bool)
	collectFreeVars(t, fv)
	return fv
}

func collectFreeVars(t Type, fv map[string]bool) {
	switch t := t.(type) {
	case *Var:
		if t.Kind == UnificationVar {
			fv[t.Name] = true
		}
	case *Con:
		for _, arg := range t.Args {
			collectFreeVars(arg, fv)
		}
	}
}

// Equal reports whether two types are syntactically identical (no
// unification or synonym expansion is performed).
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case BaseAtom:
		b, ok := b.(BaseAtom)
		return ok && a == b
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name && a.Kind == b.Kind
	case *Syn:
		b, ok := b.(*Syn)
		return ok && a.Name == b.Name
	case *Con:
		b, ok := b.(*Con)
		if !ok || a.Ctor != b.Ctor || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
