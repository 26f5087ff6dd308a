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

// skolemCheck walks the weakly-connected components of ag: a WCC
// carrying more than one skolem, or a skolem alongside a base atom, is
// unsatisfiable. A WCC with exactly one skolem and otherwise unsorted
// unification variables collapses to that skolem and is removed from
// the graph; everything else is left untouched for the cycle-elimination
// and graph-solver phases.
func skolemCheck(ag *atomGraph, sorts types.SortMap) (subst.Subst, *atomGraph, error) {
	wccs := ag.g.WCC()
	result := subst.Empty
	keep := map[int]bool{}

	for _, comp := range wccs {
		var skolems, bases, vars []int
		for _, idx := range comp {
			switch a := ag.atoms[idx].(type) {
			case types.BaseAtom:
				bases = append(bases, idx)
			case *types.Var:
				if a.IsSkolem() {
					skolems = append(skolems, idx)
				} else {
					vars = append(vars, idx)
				}
			}
		}

		if len(skolems) > 1 {
			a, b := ag.atoms[skolems[0]].(*types.Var), ag.atoms[skolems[1]].(*types.Var)
			return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("rigid variables %s and %s are related but cannot unify", a.Name, b.Name))
		}
		if len(skolems) == 0 {
			for _, idx := range comp {
				keep[idx] = true
			}
			continue
		}

		skolemVar := ag.atoms[skolems[0]].(*types.Var)
		if len(bases) > 0 {
			b := ag.atoms[bases[0]].(types.BaseAtom)
			return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("rigid variable %s cannot be related to base type %s", skolemVar.Name, b))
		}
		bindings := make(map[string]types.Type, len(vars))
		for _, idx := range vars {
			v := ag.atoms[idx].(*types.Var)
			if !sorts.Get(v.Name).IsTop() {
				return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("variable %s carries a sort and cannot unify with rigid variable %s", v.Name, skolemVar.Name))
			}
			bindings[v.Name] = skolemVar
		}
		result = subst.Compose(result, subst.New(bindings))
	}

	return result, restrictAtomGraph(ag, keep), nil
}

// restrictAtomGraph returns the induced subgraph of ag on the kept
// indices, renumbered so it can be fed back through util.Graph.
func restrictAtomGraph(ag *atomGraph, keep map[int]bool) *atomGraph {
	out := &atomGraph{indexOf: map[string]int{}}
	remap := map[int]int{}
	for i, a := range ag.atoms {
		if !keep[i] {
			continue
		}
		j := len(out.atoms)
		remap[i] = j
		out.atoms = append(out.atoms, a)
		out.indexOf[atomKey(a)] = j
	}
	out.g = util.NewGraph(len(out.atoms))
	for i, succs := range ag.g {
		if !keep[i] {
			continue
		}
		for _, s := range succs {
			if keep[s] {
				out.g.AddEdge(remap[i], remap[s])
			}
		}
	}
	return out
}
