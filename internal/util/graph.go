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

package util

type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

func (g Graph) SCC() [][]int {
	state := sccState{
		indexTable: make([]int, len(g)),
		lowLink:    make([]int, len(g)),
		onStack:    make([]bool, len(g)),
	}
	for v := range g {
		if state.indexTable[v] == 0 {
			g.tarjanSCC(&state, v)
		}
	}
	sccs := state.sccs
	// Reverse the slice for topological ordering:
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}

type sccState struct {
	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []int
	sccs  [][]int
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
//
// Components will be output in reversed dependency-order. Reversing the output creates a proper topological sort.
func (g Graph) tarjanSCC(state *sccState, v int) {
	min := func(a, b int) int {
		if a < b {
			return a
		}
		return b
	}
	// Set the depth index for v to the smallest unused index
	state.index++
	state.indexTable[v] = state.index
	state.lowLink[v] = state.index
	state.stack = append(state.stack, v)
	state.onStack[v] = true

	// Consider successors of v
	for _, succ := range g[v] {
		if state.indexTable[succ] == 0 {
			// Successor has not yet been visited; recur on it
			g.tarjanSCC(state, succ)
			state.lowLink[v] = min(state.lowLink[v], state.lowLink[succ])
		} else if state.onStack[succ] {
			// Successor is in stack s and hence in the current SCC
			state.lowLink[v] = min(state.lowLink[v], state.indexTable[succ])
		}
	}

	// If v is a root node, pop the stack and generate an SCC
	if state.lowLink[v] == state.indexTable[v] {
		// Start a new strongly connected component
		var (
			c    []int
			succ int
		)
		for {
			succ, state.stack = state.stack[len(state.stack)-1], state.stack[:len(state.stack)-1]
			state.onStack[succ] = false
			// Add successor to current strongly connected component
			c = append(c, succ)
			if succ == v {
				break
			}
		}
		// Output the current strongly connected component
		state.sccs = append(state.sccs, c)
	}
}

// unionFind is a standard disjoint-set structure over vertex indices, used
// to compute weakly-connected components: WCCs ignore edge direction, so
// Tarjan's algorithm (which relies on direction) doesn't apply.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
}

// WCC returns the weakly-connected components of g, each as a sorted
// slice of vertex indices. Components are returned in order of their
// smallest member, so the result is deterministic.
func (g Graph) WCC() [][]int {
	uf := newUnionFind(len(g))
	for v, succs := range g {
		for _, u := range succs {
			uf.union(v, u)
		}
	}
	groups := make(map[int][]int)
	for v := range g {
		root := uf.find(v)
		groups[root] = append(groups[root], v)
	}
	roots := make([]int, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sortInts(roots)
	out := make([][]int, len(roots))
	for i, root := range roots {
		comp := groups[root]
		sortInts(comp)
		out[i] = comp
	}
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// Pred returns the reverse adjacency list of g: pred[v] lists every vertex
// with an edge into v.
func (g Graph) Pred() [][]int {
	pred := make([][]int, len(g))
	for v, succs := range g {
		for _, u := range succs {
			pred[u] = append(pred[u], v)
		}
	}
	return pred
}

// Condensation collapses each SCC of g to a single vertex and returns the
// resulting DAG together with a mapping from original vertex index to its
// SCC's index in the condensed graph. SCCs are numbered in the
// topological order SCC already returns, so the condensed graph is a DAG
// whenever g's cycles are exactly its SCCs (always true by construction).
func (g Graph) Condensation() (cg Graph, vertexSCC []int) {
	sccs := g.SCC()
	vertexSCC = make([]int, len(g))
	for i, comp := range sccs {
		for _, v := range comp {
			vertexSCC[v] = i
		}
	}
	cg = NewGraph(len(sccs))
	for v, succs := range g {
		for _, u := range succs {
			cv, cu := vertexSCC[v], vertexSCC[u]
			if cv != cu {
				cg.AddEdge(cv, cu)
			}
		}
	}
	return cg, vertexSCC
}

// Map applies f to every edge endpoint of g, returning a new graph over
// the same vertex count with remapped indices. Used when a solver step
// renames or merges vertices, e.g. quotienting a graph by unification.
func (g Graph) Map(f func(int) int) Graph {
	out := NewGraph(len(g))
	for v, succs := range g {
		fv := f(v)
		for _, u := range succs {
			out.AddEdge(fv, f(u))
		}
	}
	return out
}

// Delete removes every edge touching v; v's slot remains in the graph but
// becomes isolated.
func (g Graph) Delete(v int) {
	g[v] = nil
	for u := range g {
		if u == v {
			continue
		}
		filtered := g[u][:0]
		for _, succ := range g[u] {
			if succ != v {
				filtered = append(filtered, succ)
			}
		}
		g[u] = filtered
	}
}
