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

package types_test

import (
	"testing"

	. "github.com/disco-lang/discoinfer/types"
)

func TestSubBaseChain(t *testing.T) {
	if !SubBase(Nat, Real) {
		t.Fatal("expected Nat <= Real")
	}
	if SubBase(Real, Nat) {
		t.Fatal("did not expect Real <= Nat")
	}
	if SubBase(Bool, Char) {
		t.Fatal("Bool and Char are incomparable")
	}
}

func TestLUBGLBBase(t *testing.T) {
	if lub, ok := LUBBase(Nat, Int); !ok || lub != Int {
		t.Fatalf("LUB(Nat,Int) = %v, %v", lub, ok)
	}
	if glb, ok := GLBBase(Nat, Int); !ok || glb != Nat {
		t.Fatalf("GLB(Nat,Int) = %v, %v", glb, ok)
	}
	if _, ok := LUBBase(Bool, Unit); ok {
		t.Fatal("expected no LUB for incomparable atoms")
	}
}

func TestDirTypes(t *testing.T) {
	supers := DirTypes(DirSuper, Int)
	want := []BaseAtom{Int, Rational, Real}
	if len(supers) != len(want) {
		t.Fatalf("DirTypes(super, Int) = %v", supers)
	}
	for i := range want {
		if supers[i] != want[i] {
			t.Fatalf("DirTypes(super, Int) = %v, want %v", supers, want)
		}
	}
}

func TestHasSort(t *testing.T) {
	s := TopSort.With(QualNum).With(QualSub)
	if !HasSort(Int, s) {
		t.Fatal("Int should satisfy {num,sub}")
	}
	if HasSort(Nat, s) {
		t.Fatal("Nat lacks sub and should not satisfy {num,sub}")
	}
}

func TestPickSortBase(t *testing.T) {
	b, ok := PickSortBase(TopSort.With(QualNum))
	if !ok || b != Nat {
		t.Fatalf("PickSortBase({num}) = %v, %v, want Nat", b, ok)
	}
	if _, ok := PickSortBase(TopSort.With(QualNum).With(QualBool)); ok {
		t.Fatal("no base atom should satisfy both num and bool")
	}
}

func TestSortMapUnion(t *testing.T) {
	m1 := SingletonSortMap("v", TopSort.With(QualNum))
	m2 := SingletonSortMap("v", TopSort.With(QualSub))
	merged := m1.Union(m2)
	s := merged.Get("v")
	if !s.Has(QualNum) || !s.Has(QualSub) {
		t.Fatalf("expected {num,sub}, got %s", s)
	}
	if merged.Get("w") != TopSort {
		t.Fatal("unmapped name should default to TopSort")
	}
}

func TestQualRule(t *testing.T) {
	if _, ok := QualRule(CtorArrow, QualEnum); ok {
		t.Fatal("arrow types should have no enum rule")
	}
	args, ok := QualRule(CtorList, QualEnum)
	if !ok || len(args) != 1 || !args[0].Required {
		t.Fatalf("unexpected list/enum rule: %+v, %v", args, ok)
	}
}

func TestFreshGenDistinctNames(t *testing.T) {
	g := NewFreshGen(5)
	a := g.NewUnificationVar()
	b := g.NewSkolemVar()
	if a.Name == b.Name {
		t.Fatalf("expected distinct fresh names, got %s twice", a.Name)
	}
	if !a.IsUnification() || !b.IsSkolem() {
		t.Fatal("fresh vars did not carry the requested kind")
	}
}

func TestEqual(t *testing.T) {
	a := &Con{Ctor: CtorList, Args: []Type{Nat}}
	b := &Con{Ctor: CtorList, Args: []Type{Nat}}
	if !Equal(a, b) {
		t.Fatal("structurally identical Con values should be Equal")
	}
	c := &Con{Ctor: CtorList, Args: []Type{Int}}
	if Equal(a, c) {
		t.Fatal("Con values with different arguments should not be Equal")
	}
}
