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

	"github.com/disco-lang/discoinfer/internal/util"
	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// rebind merges the vertex holding atom from into the vertex holding
// atom to, redirecting every edge and collapsing duplicates. Used to
// commit a variable's chosen base type.
func rebind(ag *atomGraph, from, to types.Atom) *atomGraph {
	fromKey, toKey := atomKey(from), atomKey(to)
	newIndexOf := map[string]int{}
	var newAtoms []types.Atom
	oldToNew := make([]int, len(ag.atoms))
	for i, a := range ag.atoms {
		key, atom := atomKey(a), a
		if key == fromKey {
			key, atom = toKey, to
		}
		if j, ok := newIndexOf[key]; ok {
			oldToNew[i] = j
			continue
		}
		j := len(newAtoms)
		newAtoms = append(newAtoms, atom)
		newIndexOf[key] = j
		oldToNew[i] = j
	}
	g := util.NewGraph(len(newAtoms))
	for i, succs := range ag.g {
		for _, s := range succs {
			ni, nj := oldToNew[i], oldToNew[s]
			if ni != nj {
				g.AddEdge(ni, nj)
			}
		}
	}
	return &atomGraph{g: g, atoms: newAtoms, indexOf: newIndexOf}
}

// glbBySort folds GLBBase across bases, then returns the greatest subtype
// of the result (itself included) that satisfies s.
func glbBySort(bases []types.BaseAtom, s types.Sort) (types.BaseAtom, bool) {
	if len(bases) == 0 {
		return 0, false
	}
	acc := bases[0]
	for _, b := range bases[1:] {
		g, ok := types.GLBBase(acc, b)
		if !ok {
			return 0, false
		}
		acc = g
	}
	for _, c := range types.DirTypes(types.DirSub, acc) {
		if types.HasSort(c, s) {
			return c, true
		}
	}
	return 0, false
}

// lubBySort folds LUBBase across bases, then returns the least supertype
// of the result (itself included) that satisfies s.
func lubBySort(bases []types.BaseAtom, s types.Sort) (types.BaseAtom, bool) {
	if len(bases) == 0 {
		return 0, false
	}
	acc := bases[0]
	for _, b := range bases[1:] {
		l, ok := types.LUBBase(acc, b)
		if !ok {
			return 0, false
		}
		acc = l
	}
	for _, c := range types.DirTypes(types.DirSuper, acc) {
		if types.HasSort(c, s) {
			return c, true
		}
	}
	return 0, false
}

// chooseBase picks the base type to assign a variable whose relMap is rm
// and whose recorded sort is s, per the solve-loop's bound table: no
// pressure falls back to a canonical inhabitant of s; pressure from only
// one direction takes the tightest bound consistent with s; pressure
// from both directions requires the lower bound not exceed the upper
// bound, and keeps the lower bound ("simpler types win").
func chooseBase(rm *relMap, s types.Sort) (types.BaseAtom, error) {
	switch {
	case len(rm.basePred) == 0 && len(rm.baseSucc) == 0:
		b, ok := types.PickSortBase(s)
		if !ok {
			return 0, types.NewNoUnify(fmt.Errorf("no base type inhabits sort %s", s))
		}
		return b, nil
	case len(rm.basePred) == 0:
		b, ok := glbBySort(rm.baseSucc, s)
		if !ok {
			return 0, types.NewNoUnify(fmt.Errorf("no base type is a subtype of every successor bound and satisfies %s", s))
		}
		return b, nil
	case len(rm.baseSucc) == 0:
		b, ok := lubBySort(rm.basePred, s)
		if !ok {
			return 0, types.NewNoUnify(fmt.Errorf("no base type is a supertype of every predecessor bound and satisfies %s", s))
		}
		return b, nil
	default:
		lb, ok1 := lubBySort(rm.basePred, s)
		ub, ok2 := glbBySort(rm.baseSucc, s)
		if !ok1 || !ok2 {
			return 0, types.NewNoUnify(fmt.Errorf("inconsistent base bounds for sort %s", s))
		}
		if lb != ub && !types.SubBase(lb, ub) {
			return 0, types.NewNoUnify(fmt.Errorf("lower bound %s exceeds upper bound %s", lb, ub))
		}
		return lb, nil
	}
}

// graphSolve assigns a base type to every unification variable under
// base-type pressure or a nontrivial sort, then quotients whatever
// variable-only weakly-connected components remain by unification.
func graphSolve(ag *atomGraph, sorts types.SortMap) (subst.Subst, error) {
	result := subst.Empty
	for {
		relMaps := buildRelMaps(ag)
		chosen := pickCandidate(relMaps, sorts)
		if chosen == "" {
			break
		}
		b, err := chooseBase(relMaps[chosen], sorts.Get(chosen))
		if err != nil {
			return subst.Empty, err
		}
		ag = rebind(ag, types.NewUnificationVar(chosen), b)
		result = subst.Compose(result, subst.Singleton(chosen, b))
		sorts = sorts.Delete(chosen)
	}

	for _, comp := range ag.g.WCC() {
		if len(comp) <= 1 {
			continue
		}
		atoms := make([]types.Atom, len(comp))
		for i, idx := range comp {
			atoms[i] = ag.atoms[idx]
		}
		s, canon, err := unifyAtoms(atoms)
		if err != nil {
			return subst.Empty, err
		}
		if canon != nil {
			result = subst.Compose(result, s)
		}
	}
	return result, nil
}

// pickCandidate selects the next variable to solve: one under base
// pressure in either direction, else one carrying a nontrivial sort,
// else none. Ties break on name for a deterministic solve order.
func pickCandidate(relMaps map[string]*relMap, sorts types.SortMap) string {
	chosen := ""
	for name, rm := range relMaps {
		if len(rm.basePred) == 0 && len(rm.baseSucc) == 0 {
			continue
		}
		if chosen == "" || name < chosen {
			chosen = name
		}
	}
	if chosen != "" {
		return chosen
	}
	for name := range relMaps {
		if sorts.Get(name).IsTop() {
			continue
		}
		if chosen == "" || name < chosen {
			chosen = name
		}
	}
	return chosen
}
