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
	"fmt"
	"sort"

	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// eq is a single type equation, independent of whether it originated as
// an Eq or a Sub constraint: unify and weakUnify both work over plain
// equations, differing only in how callers build the list and in which
// SolveError kind wraps a failure.
type eq struct {
	T1, T2 types.Type
}

// unify finds the most general unifier of eqs, or fails with NoUnify.
// defs resolves type-synonym references encountered along the way.
func unify(defs map[string]types.Type, eqs []eq) (subst.Subst, error) {
	s, err := unifyCore(defs, eqs)
	if err != nil {
		if _, ok := err.(*types.SolveError); ok {
			return subst.Empty, err
		}
		return subst.Empty, types.NewNoUnify(err)
	}
	return s, nil
}

// weakUnify runs the same algorithm treating every constraint (including
// ones that started as subtyping) as an equation. Its result is
// discarded by callers; it exists solely to prove the subtyping problem
// has a finite structure before the simplifier starts decomposing it.
func weakUnify(defs map[string]types.Type, eqs []eq) error {
	_, err := unifyCore(defs, eqs)
	if err != nil {
		if _, ok := err.(*types.SolveError); ok {
			return err
		}
		return types.NewNoWeakUnifier(err)
	}
	return nil
}

func unifyCore(defs map[string]types.Type, eqs []eq) (subst.Subst, error) {
	if len(eqs) == 0 {
		return subst.Empty, nil
	}
	head, rest := eqs[0], eqs[1:]
	t1, t2 := head.T1, head.T2

	switch a := t1.(type) {
	case types.BaseAtom:
		switch b := t2.(type) {
		case types.BaseAtom:
			if a == b {
				return unifyCore(defs, rest)
			}
			return subst.Empty, fmt.Errorf("base type %s does not unify with %s", a, b)
		case *types.Var:
			return unifyVar(defs, b, t1, rest)
		case *types.Syn:
			return unifyExpand(defs, b, t1, rest, false)
		}
		return subst.Empty, fmt.Errorf("cannot unify base type %s with %s", a, t2.TypeName())

	case *types.Var:
		if a.IsSkolem() {
			if b, ok := t2.(*types.Var); ok && b.IsSkolem() {
				if a.Name == b.Name {
					return unifyCore(defs, rest)
				}
				return subst.Empty, fmt.Errorf("rigid variable %s does not unify with rigid variable %s", a.Name, b.Name)
			}
			if b, ok := t2.(*types.Syn); ok {
				return unifyExpand(defs, b, t1, rest, false)
			}
			return subst.Empty, fmt.Errorf("rigid variable %s does not unify with %s", a.Name, t2.TypeName())
		}
		return unifyVar(defs, a, t2, rest)

	case *types.Syn:
		return unifyExpand(defs, a, t2, rest, true)

	case *types.Con:
		switch b := t2.(type) {
		case *types.Con:
			if a.Ctor != b.Ctor || len(a.Args) != len(b.Args) {
				return subst.Empty, fmt.Errorf("cannot unify %s with %s", a.Ctor, b.Ctor)
			}
			next := make([]eq, 0, len(a.Args)+len(rest))
			for i := range a.Args {
				next = append(next, eq{a.Args[i], b.Args[i]})
			}
			next = append(next, rest...)
			return unifyCore(defs, next)
		case *types.Var:
			return unifyVar(defs, b, t1, rest)
		case *types.Syn:
			return unifyExpand(defs, b, t1, rest, false)
		}
		return subst.Empty, fmt.Errorf("cannot unify %s with %s", a.TypeName(), t2.TypeName())
	}
	return subst.Empty, fmt.Errorf("cannot unify %s with %s", t1.TypeName(), t2.TypeName())
}

// unifyExpand looks up a type synonym and re-enqueues the equation with
// its definition substituted for the reference. lhsIsSyn tracks which
// side carried the Syn so the pair is rebuilt in the original order.
func unifyExpand(defs map[string]types.Type, syn *types.Syn, other types.Type, rest []eq, lhsIsSyn bool) (subst.Subst, error) {
	def, ok := defs[syn.Name]
	if !ok {
		return subst.Empty, types.NewUnknown(syn.Name)
	}
	var head eq
	if lhsIsSyn {
		head = eq{def, other}
	} else {
		head = eq{other, def}
	}
	next := make([]eq, 0, len(rest)+1)
	next = append(next, head)
	next = append(next, rest...)
	return unifyCore(defs, next)
}

// unifyVar binds v to t, provided the occurs check passes, then resolves
// the rest of the worklist under that binding.
func unifyVar(defs map[string]types.Type, v *types.Var, t types.Type, rest []eq) (subst.Subst, error) {
	if same, ok := t.(*types.Var); ok && same.Name == v.Name && same.Kind == v.Kind {
		return unifyCore(defs, rest)
	}
	if v.IsSkolem() {
		return subst.Empty, fmt.Errorf("rigid variable %s does not unify with %s", v.Name, t.TypeName())
	}
	if types.FreeVars(t)[v.Name] {
		return subst.Empty, fmt.Errorf("occurs check failed: %s occurs in %s", v.Name, t.TypeName())
	}
	s1 := subst.Singleton(v.Name, t)
	applied := make([]eq, len(rest))
	for i, e := range rest {
		applied[i] = eq{subst.Apply(s1, e.T1), subst.Apply(s1, e.T2)}
	}
	s2, err := unifyCore(defs, applied)
	if err != nil {
		return subst.Empty, err
	}
	return subst.Compose(s1, s2), nil
}

// unifyAtoms unifies every member of a set of atoms (typically one
// weakly-connected or strongly-connected component of the constraint
// graph) to a single representative, failing when two distinct base
// atoms or a skolem mixed with a base atom appear in the set.
func unifyAtoms(atoms []types.Atom) (subst.Subst, types.Atom, error) {
	var bases []types.BaseAtom
	var skolems []*types.Var
	var vars []*types.Var
	seenBase := map[types.BaseAtom]bool{}
	seenName := map[string]bool{}
	for _, a := range atoms {
		switch a := a.(type) {
		case types.BaseAtom:
			if !seenBase[a] {
				seenBase[a] = true
				bases = append(bases, a)
			}
		case *types.Var:
			if seenName[a.Name] {
				continue
			}
			seenName[a.Name] = true
			if a.IsSkolem() {
				skolems = append(skolems, a)
			} else {
				vars = append(vars, a)
			}
		}
	}

	if len(skolems) > 1 {
		return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("cannot unify distinct rigid variables %s and %s", skolems[0].Name, skolems[1].Name))
	}
	if len(skolems) == 1 {
		if len(bases) > 0 {
			return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("cannot unify rigid variable %s with base type %s", skolems[0].Name, bases[0]))
		}
		bindings := make(map[string]types.Type, len(vars))
		for _, v := range vars {
			bindings[v.Name] = skolems[0]
		}
		return subst.New(bindings), skolems[0], nil
	}
	if len(bases) > 1 {
		return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("cannot unify distinct base types %s and %s", bases[0], bases[1]))
	}
	if len(bases) == 1 {
		bindings := make(map[string]types.Type, len(vars))
		for _, v := range vars {
			bindings[v.Name] = bases[0]
		}
		return subst.New(bindings), bases[0], nil
	}
	if len(vars) == 0 {
		return subst.Empty, nil, nil
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	canon := vars[0]
	bindings := make(map[string]types.Type, len(vars)-1)
	for _, v := range vars[1:] {
		bindings[v.Name] = canon
	}
	return subst.New(bindings), canon, nil
}
