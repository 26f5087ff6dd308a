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

package util_test

import (
	"reflect"
	"testing"

	. "github.com/disco-lang/discoinfer/internal/util"
)

func TestWCC(t *testing.T) {
	// 0 -> 1, 2 -> 3, with no edge between the two pairs.
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	got := g.WCC()
	want := [][]int{{0, 1}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WCC: got %v, want %v", got, want)
	}
}

func TestWCCIgnoresDirection(t *testing.T) {
	// 0 -> 1 <- 2 plus an isolated 3; 0 and 2 are connected only when
	// edge direction is ignored, so WCC groups 0,1,2 together.
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 1)
	got := g.WCC()
	want := [][]int{{0, 1, 2}, {3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WCC: got %v, want %v", got, want)
	}
}

func TestCondensationCollapsesSCCs(t *testing.T) {
	// 0 <-> 1 is one SCC; 1 -> 2 crosses into a singleton SCC.
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(1, 2)
	cg, vertexSCC := g.Condensation()
	if vertexSCC[0] != vertexSCC[1] {
		t.Fatalf("expected 0 and 1 in the same SCC, got %v", vertexSCC)
	}
	if vertexSCC[1] == vertexSCC[2] {
		t.Fatalf("expected 2 in its own SCC, got %v", vertexSCC)
	}
	if !cg.HasEdge(vertexSCC[1], vertexSCC[2]) {
		t.Fatalf("expected condensed graph to keep the cross-SCC edge")
	}
}

func TestPred(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	pred := g.Pred()
	want := []int{0, 1}
	got := append([]int(nil), pred[2]...)
	if len(got) != len(want) {
		t.Fatalf("Pred(2): got %v, want %v", got, want)
	}
}

func TestDelete(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.Delete(1)
	if g.HasEdge(0, 1) || g.HasEdge(1, 2) {
		t.Fatalf("expected all edges touching 1 to be gone, got %v", g)
	}
}
