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
	"sort"

	"github.com/disco-lang/discoinfer/constraint"
	"github.com/disco-lang/discoinfer/internal/util"
	"github.com/disco-lang/discoinfer/types"
)

// atomGraph is the constraint graph over atoms surviving simplification:
// vertices are Base ∪ UnificationVar ∪ SkolemVar, indexed for use with
// internal/util.Graph, and edges record a <: b after simplification.
type atomGraph struct {
	g       util.Graph
	atoms   []types.Atom // index -> atom
	indexOf map[string]int
}

// atomKey gives a stable identity for an atom: base atoms key by name,
// variables key by name plus kind (so a unification var and a skolem
// that happen to share a name, which fresh-name generation never
// produces but callers could in principle supply, stay distinct).
func atomKey(a types.Atom) string {
	switch a := a.(type) {
	case types.BaseAtom:
		return "b:" + a.String()
	case *types.Var:
		if a.IsSkolem() {
			return "s:" + a.Name
		}
		return "u:" + a.Name
	}
	return ""
}

// buildAtomGraph constructs the constraint graph from a list of atomic
// subtype constraints (Simple values where both sides are Atom).
func buildAtomGraph(simples []constraint.Simple) *atomGraph {
	ag := &atomGraph{indexOf: map[string]int{}}
	index := func(a types.Atom) int {
		k := atomKey(a)
		if i, ok := ag.indexOf[k]; ok {
			return i
		}
		i := len(ag.atoms)
		ag.indexOf[k] = i
		ag.atoms = append(ag.atoms, a)
		return i
	}
	type edge struct{ from, to int }
	var edges []edge
	for _, c := range simples {
		a1 := c.T1.(types.Atom)
		a2 := c.T2.(types.Atom)
		i, j := index(a1), index(a2)
		edges = append(edges, edge{i, j})
	}
	ag.g = util.NewGraph(len(ag.atoms))
	for _, e := range edges {
		ag.g.AddEdge(e.from, e.to)
	}
	return ag
}

func (ag *atomGraph) atomAt(i int) types.Atom { return ag.atoms[i] }

func (ag *atomGraph) indexOfAtom(a types.Atom) (int, bool) {
	i, ok := ag.indexOf[atomKey(a)]
	return i, ok
}

// relMap records, for one unification variable, the base atoms and
// variable names directly related to it in each direction.
type relMap struct {
	basePred, baseSucc []types.BaseAtom
	varPred, varSucc   []string
}

// buildRelMaps computes the RelMap for every unification variable named
// in ag, keyed by variable name, with deterministic ordering so solve
// order (and therefore error messages) is reproducible.
func buildRelMaps(ag *atomGraph) map[string]*relMap {
	pred := ag.g.Pred()
	out := map[string]*relMap{}
	for i, a := range ag.atoms {
		v, ok := a.(*types.Var)
		if !ok || v.IsSkolem() {
			continue
		}
		rm := &relMap{}
		for _, p := range pred[i] {
			switch pa := ag.atoms[p].(type) {
			case types.BaseAtom:
				rm.basePred = append(rm.basePred, pa)
			case *types.Var:
				if !pa.IsSkolem() {
					rm.varPred = append(rm.varPred, pa.Name)
				}
			}
		}
		for _, s := range ag.g[i] {
			switch sa := ag.atoms[s].(type) {
			case types.BaseAtom:
				rm.baseSucc = append(rm.baseSucc, sa)
			case *types.Var:
				if !sa.IsSkolem() {
					rm.varSucc = append(rm.varSucc, sa.Name)
				}
			}
		}
		sort.Slice(rm.basePred, func(i, j int) bool { return rm.basePred[i] < rm.basePred[j] })
		sort.Slice(rm.baseSucc, func(i, j int) bool { return rm.baseSucc[i] < rm.baseSucc[j] })
		sort.Strings(rm.varPred)
		sort.Strings(rm.varSucc)
		out[v.Name] = rm
	}
	return out
}
