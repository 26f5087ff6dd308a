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

package discoinfer

import (
	"strconv"
	"strings"

	"github.com/disco-lang/discoinfer/constraint"
	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// Solve is the core's sole entry point: it reduces a well-formed
// constraint tree to a principal substitution over defs, the module's
// type-synonym table, or returns the *types.SolveError describing which
// invariant the constraint violates.
//
// On success, the substitution's domain is a subset of the unification
// variables appearing in c, and its range is free of any unification
// variable also in its domain.
func Solve(defs map[string]types.Type, c constraint.Constraint) (subst.Subst, error) {
	gen := types.NewFreshGen(freshSeed(c))
	alts, err := constraint.Decompose(c, gen)
	if err != nil {
		return subst.Empty, err
	}

	var firstErr error
	for _, alt := range alts {
		s, err := solveAlternative(defs, alt.Sorts, alt.Simples, gen)
		if err == nil {
			return s, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return subst.Empty, firstErr
	}
	return subst.Empty, types.NewNoUnify(nil)
}

// solveAlternative runs the weak-unify termination guard, simplification,
// skolem check, cycle elimination, and graph solver in sequence over one
// decomposed alternative, composing each phase's substitution into the
// next.
func solveAlternative(defs map[string]types.Type, sorts types.SortMap, simples []constraint.Simple, gen *types.FreshGen) (subst.Subst, error) {
	eqs := make([]eq, len(simples))
	for i, s := range simples {
		eqs[i] = eq{s.T1, s.T2}
	}
	if err := weakUnify(defs, eqs); err != nil {
		return subst.Empty, err
	}

	sp := newSimplifier(defs, sorts, simples, gen)
	if err := sp.run(); err != nil {
		return subst.Empty, err
	}

	ag := buildAtomGraph(sp.simples)

	sSkolem, ag2, err := skolemCheck(ag, sp.sorts)
	if err != nil {
		return subst.Empty, err
	}

	sCyc, ag3, err := cycleElim(ag2, sp.sorts)
	if err != nil {
		return subst.Empty, err
	}

	sSol, err := graphSolve(ag3, sp.sorts)
	if err != nil {
		return subst.Empty, err
	}

	result := subst.Compose(sp.s, sSkolem)
	result = subst.Compose(result, sCyc)
	result = subst.Compose(result, sSol)
	return result, nil
}

// freshSeed derives the starting counter for gen from the free variables
// syntactically present in c. Ordinary source identifiers never collide
// with the solver's own "_tN" fresh-name scheme, so the only collisions
// worth avoiding are with names produced by a prior call to Solve whose
// output constraint is fed back in; scanning for that prefix keeps
// fresh-name generation a pure, deterministic function of the input.
func freshSeed(c constraint.Constraint) int {
	names := map[string]bool{}
	collectConstraintVars(c, names)
	max := -1
	for name := range names {
		if n, ok := parseFreshSuffix(name); ok && n > max {
			max = n
		}
	}
	return max + 1
}

func parseFreshSuffix(name string) (int, bool) {
	const prefix = "_t"
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}

func collectConstraintVars(c constraint.Constraint, out map[string]bool) {
	addType := func(t types.Type) {
		for name := range types.FreeVars(t) {
			out[name] = true
		}
	}
	switch c := c.(type) {
	case constraint.Sub:
		addType(c.T1)
		addType(c.T2)
	case constraint.Eq:
		addType(c.T1)
		addType(c.T2)
	case constraint.Qual:
		addType(c.T)
	case constraint.And:
		for _, child := range c.Cs {
			collectConstraintVars(child, out)
		}
	case constraint.Or:
		for _, child := range c.Cs {
			collectConstraintVars(child, out)
		}
	case constraint.All:
		collectConstraintVars(c.Body, out)
	}
}
