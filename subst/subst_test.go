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

package subst_test

import (
	"testing"

	. "github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

func TestApplyLeavesUnboundAndRigidUntouched(t *testing.T) {
	s := Singleton("a", types.Int)
	skolem := types.NewSkolemVar("a")
	if got := Apply(s, skolem); got != types.Type(skolem) {
		t.Fatalf("Apply touched a skolem sharing the bound name: %v", got)
	}
	unbound := types.NewUnificationVar("b")
	if got := Apply(s, unbound); got != types.Type(unbound) {
		t.Fatalf("Apply touched an unbound variable: %v", got)
	}
}

func TestApplyRecursesIntoCon(t *testing.T) {
	s := Singleton("a", types.Int)
	con := &types.Con{Ctor: types.CtorList, Args: []types.Type{types.NewUnificationVar("a")}}
	got := Apply(s, con)
	want := &types.Con{Ctor: types.CtorList, Args: []types.Type{types.Int}}
	if !types.Equal(got, want) {
		t.Fatalf("Apply(s, %v) = %v, want %v", con, got, want)
	}
}

func TestApplyConSharesUnchangedNode(t *testing.T) {
	con := &types.Con{Ctor: types.CtorList, Args: []types.Type{types.Int}}
	got := Apply(Empty, con)
	if got != types.Type(con) {
		t.Fatal("Apply should return the same node when nothing changes")
	}
}

func TestComposeOrder(t *testing.T) {
	// s1: a -> b, s2: b -> Int. Composing should resolve a all the way
	// through to Int, matching Apply(Compose(s1,s2), t) == Apply(s2, Apply(s1, t)).
	s1 := Singleton("a", types.NewUnificationVar("b"))
	s2 := Singleton("b", types.Int)
	composed := Compose(s1, s2)

	a := types.NewUnificationVar("a")
	direct := Apply(s2, Apply(s1, a))
	viaCompose := Apply(composed, a)
	if !types.Equal(direct, viaCompose) {
		t.Fatalf("Apply(Compose(s1,s2), a) = %v, want %v", viaCompose, direct)
	}
	if !types.Equal(viaCompose, types.Int) {
		t.Fatalf("expected a to resolve to Int through the chain, got %v", viaCompose)
	}
}

func TestComposeSecondWinsOnCollision(t *testing.T) {
	s1 := Singleton("a", types.Int)
	s2 := Singleton("a", types.Nat)
	composed := Compose(s1, s2)
	bound, ok := composed.Lookup("a")
	if !ok || bound != types.Type(types.Nat) {
		t.Fatalf("a = %v, want Nat (s2 wins)", bound)
	}
}

func TestIsIdempotent(t *testing.T) {
	idempotent := New(map[string]types.Type{"a": types.Int, "b": types.Nat})
	if !IsIdempotent(idempotent) {
		t.Fatal("expected a substitution with no chained bindings to be idempotent")
	}

	notIdempotent := New(map[string]types.Type{"a": types.NewUnificationVar("b"), "b": types.Int})
	if IsIdempotent(notIdempotent) {
		t.Fatal("expected a chained substitution (a -> b, b -> Int) to be non-idempotent")
	}
}

func TestRestrict(t *testing.T) {
	s := New(map[string]types.Type{"a": types.Int, "b": types.Nat, "c": types.Bool})
	r := s.Restrict(map[string]bool{"a": true, "c": true})
	if r.Len() != 2 {
		t.Fatalf("Restrict kept %d entries, want 2", r.Len())
	}
	if _, ok := r.Lookup("b"); ok {
		t.Fatal("Restrict should have dropped b")
	}
}

func TestDeleteIsNoopWhenAbsent(t *testing.T) {
	s := Singleton("a", types.Int)
	if s.Delete("z").Len() != s.Len() {
		t.Fatal("deleting an absent key should not change Len")
	}
}
