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
	"testing"

	"github.com/disco-lang/discoinfer/constraint"
	"github.com/disco-lang/discoinfer/types"
)

// BenchmarkSolveSubtypeChain exercises the graph solver on a chain of
// unification variables bounded above by a base type: v0 <: v1 <: ... <: vN
// <: Int, forcing every variable to carry base-type pressure from its
// successor.
func BenchmarkSolveSubtypeChain(b *testing.B) {
	const n = 32
	vars := make([]*types.Var, n)
	for i := range vars {
		vars[i] = types.NewUnificationVar(fmt.Sprintf("v%d", i))
	}
	var cs []constraint.Constraint
	for i := 0; i < n-1; i++ {
		cs = append(cs, constraint.Sub{T1: vars[i], T2: vars[i+1]})
	}
	cs = append(cs, constraint.Sub{T1: vars[n-1], T2: types.Int})
	c := constraint.And{Cs: cs}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Solve(nil, c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveSkolemUnderArrows exercises the skolem check and cycle
// elimination across a batch of independently quantified arrow
// constraints, each instantiating its own skolem.
func BenchmarkSolveSkolemUnderArrows(b *testing.B) {
	const n = 16
	var cs []constraint.Constraint
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("a%d", i)
		a := types.NewSkolemVar(name)
		arrow := &types.Con{Ctor: types.CtorArrow, Args: []types.Type{a, a}}
		cs = append(cs, constraint.All{
			Vars: []string{name},
			Body: constraint.Sub{T1: arrow, T2: arrow},
		})
	}
	c := constraint.And{Cs: cs}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Solve(nil, c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveDisjunctionBacktrack exercises decomposeOr's
// drop-failing-children path: every alternative but the last fails a
// qualifier check during decomposition and is dropped, leaving a single
// alternative for the solver.
func BenchmarkSolveDisjunctionBacktrack(b *testing.B) {
	const n = 8
	var alts []constraint.Constraint
	for i := 0; i < n-1; i++ {
		alts = append(alts, constraint.Qual{Q: types.QualNum, T: types.Bool})
	}
	alts = append(alts, constraint.Qual{Q: types.QualBool, T: types.Bool})
	c := constraint.Or{Cs: alts}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Solve(nil, c); err != nil {
			b.Fatal(err)
		}
	}
}
