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

	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// cycleElim condenses ag's strongly-connected components, unifying every
// member of each to a single representative atom. The result is a DAG
// (I5) over one vertex per SCC. Every base binding produced is checked
// against the sort map so a cycle can't silently coerce a sorted
// variable into an atom it was never allowed to become.
func cycleElim(ag *atomGraph, sorts types.SortMap) (subst.Subst, *atomGraph, error) {
	cg, vertexSCC := ag.g.Condensation()
	numSCCs := len(cg)
	groups := make([][]int, numSCCs)
	for idx, scc := range vertexSCC {
		groups[scc] = append(groups[scc], idx)
	}

	result := subst.Empty
	canon := make([]types.Atom, numSCCs)
	for i, group := range groups {
		atoms := make([]types.Atom, len(group))
		for j, idx := range group {
			atoms[j] = ag.atoms[idx]
		}
		s, c, err := unifyAtoms(atoms)
		if err != nil {
			return subst.Empty, nil, err
		}
		result = subst.Compose(result, s)
		if c == nil {
			c = atoms[0]
		}
		canon[i] = c
	}

	for _, name := range result.Domain() {
		bound, _ := result.Lookup(name)
		if b, ok := bound.(types.BaseAtom); ok {
			if !types.HasSort(b, sorts.Get(name)) {
				return subst.Empty, nil, types.NewNoUnify(fmt.Errorf("base type %s does not satisfy the sort required of %s", b, name))
			}
		}
	}

	out := &atomGraph{g: cg, atoms: canon, indexOf: map[string]int{}}
	for i, a := range canon {
		out.indexOf[atomKey(a)] = i
	}
	return result, out, nil
}
