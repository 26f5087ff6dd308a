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
	"testing"

	"github.com/disco-lang/discoinfer/types"
)

func TestDecomposeSub(t *testing.T) {
	v := types.NewUnificationVar("v")
	alts, err := Decompose(Sub{v, types.Int}, types.NewFreshGen(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 || len(alts[0].Simples) != 1 {
		t.Fatalf("expected one alternative with one simple constraint, got %+v", alts)
	}
	s := alts[0].Simples[0]
	if s.Rel != RelSub || !s.IsAtomic() {
		t.Fatalf("expected atomic <: constraint, got %+v", s)
	}
}

func TestDecomposeAndJoinsSorts(t *testing.T) {
	v := types.NewUnificationVar("v")
	c := And{[]Constraint{
		Qual{types.QualNum, v},
		Sub{v, types.Int},
	}}
	alts, err := Decompose(c, types.NewFreshGen(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 {
		t.Fatalf("expected one alternative, got %d", len(alts))
	}
	if !alts[0].Sorts.Get("v").Has(types.QualNum) {
		t.Fatalf("expected v to carry qualifier num, got %v", alts[0].Sorts.Get("v"))
	}
	if len(alts[0].Simples) != 1 {
		t.Fatalf("expected the Sub constraint to survive, got %+v", alts[0].Simples)
	}
}

func TestDecomposeOrDropsFailingChild(t *testing.T) {
	c := Or{[]Constraint{
		Qual{types.QualNum, types.Bool}, // fails: UnqualBase
		Qual{types.QualOrd, types.Bool}, // succeeds
	}}
	alts, err := Decompose(c, types.NewFreshGen(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alts) != 1 {
		t.Fatalf("expected the failing child to be dropped, got %d alternatives", len(alts))
	}
}

func TestDecomposeOrReraisesFirstErrorWhenAllFail(t *testing.T) {
	c := Or{[]Constraint{
		Qual{types.QualNum, types.Bool},
		Qual{types.QualBool, types.Nat},
	}}
	_, err := Decompose(c, types.NewFreshGen(0))
	if err == nil {
		t.Fatal("expected an error when every Or child fails")
	}
	se, ok := err.(*types.SolveError)
	if !ok {
		t.Fatalf("expected *types.SolveError, got %T", err)
	}
	if se.Kind != types.ErrUnqualBase || se.BaseAtom != types.Bool {
		t.Fatalf("expected the first child's error to survive, got %+v", se)
	}
}

func TestDecomposeAllInstantiatesSkolem(t *testing.T) {
	a := types.NewUnificationVar("a")
	c := All{[]string{"a"}, Sub{a, types.Int}}
	alts, err := Decompose(c, types.NewFreshGen(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := alts[0].Simples[0]
	v, ok := s.T1.(*types.Var)
	if !ok || !v.IsSkolem() {
		t.Fatalf("expected a to be instantiated as a skolem, got %+v", s.T1)
	}
}
