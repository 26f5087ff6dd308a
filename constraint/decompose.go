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

import (
	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// Decompose reduces c to a list of alternatives, each an independent way
// of satisfying c as a SortMap plus a flat list of simple constraints.
// gen supplies fresh skolem names for All binders.
func Decompose(c Constraint, gen *types.FreshGen) ([]Alternative, error) {
	switch c := c.(type) {
	case Sub:
		return []Alternative{{types.EmptySortMap, []Simple{{RelSub, c.T1, c.T2}}}}, nil
	case Eq:
		return []Alternative{{types.EmptySortMap, []Simple{{RelEq, c.T1, c.T2}}}}, nil
	case Qual:
		sorts, err := decomposeQual(c.T, c.Q)
		if err != nil {
			return nil, err
		}
		return []Alternative{{sorts, nil}}, nil
	case And:
		return decomposeAnd(c.Cs, gen)
	case Or:
		return decomposeOr(c.Cs, gen)
	case All:
		return decomposeAll(c, gen)
	case TrueConstraint:
		return []Alternative{{types.EmptySortMap, nil}}, nil
	}
	return []Alternative{{types.EmptySortMap, nil}}, nil
}

// decomposeAnd takes the Cartesian product of each child's alternatives,
// unioning sort maps and concatenating simple-constraint lists per
// combination.
func decomposeAnd(cs []Constraint, gen *types.FreshGen) ([]Alternative, error) {
	combined := []Alternative{{types.EmptySortMap, nil}}
	for _, c := range cs {
		alts, err := Decompose(c, gen)
		if err != nil {
			return nil, err
		}
		var next []Alternative
		for _, acc := range combined {
			for _, alt := range alts {
				simples := make([]Simple, 0, len(acc.Simples)+len(alt.Simples))
				simples = append(simples, acc.Simples...)
				simples = append(simples, alt.Simples...)
				next = append(next, Alternative{acc.Sorts.Union(alt.Sorts), simples})
			}
		}
		combined = next
	}
	return combined, nil
}

// decomposeOr concatenates the alternative lists of every child that
// decomposes without error; a child that raises is dropped, and the
// first raised error is kept in case every child fails.
func decomposeOr(cs []Constraint, gen *types.FreshGen) ([]Alternative, error) {
	var all []Alternative
	var firstErr error
	for _, c := range cs {
		alts, err := Decompose(c, gen)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		all = append(all, alts...)
	}
	if len(all) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, nil
	}
	return all, nil
}

// decomposeAll instantiates each bound variable as a fresh skolem, then
// decomposes the body under that renaming.
func decomposeAll(c All, gen *types.FreshGen) ([]Alternative, error) {
	ren := subst.Empty
	for _, name := range c.Vars {
		ren = ren.Set(name, gen.NewSkolemVar())
	}
	return Decompose(substituteConstraint(ren, c.Body), gen)
}

// substituteConstraint rewrites every Type held by a constraint tree
// through s; it is used only to instantiate All's bound variables as
// skolems; ordinary solving never substitutes through a full
// Constraint tree, only through flat []Simple lists.
func substituteConstraint(s subst.Subst, c Constraint) Constraint {
	switch c := c.(type) {
	case Sub:
		return Sub{subst.Apply(s, c.T1), subst.Apply(s, c.T2)}
	case Eq:
		return Eq{subst.Apply(s, c.T1), subst.Apply(s, c.T2)}
	case Qual:
		return Qual{c.Q, subst.Apply(s, c.T)}
	case And:
		out := make([]Constraint, len(c.Cs))
		for i, child := range c.Cs {
			out[i] = substituteConstraint(s, child)
		}
		return And{out}
	case Or:
		out := make([]Constraint, len(c.Cs))
		for i, child := range c.Cs {
			out[i] = substituteConstraint(s, child)
		}
		return Or{out}
	case All:
		// Bound names shadow s; rebuild s without them.
		inner := s
		for _, n := range c.Vars {
			inner = inner.Delete(n)
		}
		return All{c.Vars, substituteConstraint(inner, c.Body)}
	case TrueConstraint:
		return c
	}
	return c
}
