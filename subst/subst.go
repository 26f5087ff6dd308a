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

// Package subst implements Subst, an explicit, composable finite map from
// unification-variable names to types. Rather than linking variables in
// place by mutation, the constraint solver needs a substitution it can build, compose, and apply as an
// ordinary immutable value, so this is modeled on the same ordered-map
// idiom as types.SortMap.
package subst

import (
	"github.com/benbjohnson/immutable"

	"github.com/disco-lang/discoinfer/types"
)

var empty = immutable.NewSortedMap(nil)

// Empty is the identity substitution.
var Empty = Subst{empty}

// Subst is a finite map from unification-variable name to the type it
// stands for. Entries never reference a name on the right-hand side that
// is itself a key in the map; keeping that invariant (idempotence) is the
// caller's responsibility. Compose preserves it when s2's right-hand sides
// mention no name bound by s1.
type Subst struct {
	m *immutable.SortedMap
}

// New builds a Subst from a set of bindings. Later entries in bs win over
// earlier ones for the same name.
func New(bs map[string]types.Type) Subst {
	b := immutable.NewSortedMapBuilder(empty)
	for name, t := range bs {
		b.Set(name, t)
	}
	return Subst{b.Map()}
}

// Singleton builds a Subst mapping exactly one name.
func Singleton(name string, t types.Type) Subst {
	return Subst{empty.Set(name, t)}
}

// Len returns the number of bound names.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Lookup returns the type bound to name, if any.
func (s Subst) Lookup(name string) (types.Type, bool) {
	if s.m == nil {
		return nil, false
	}
	v, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(types.Type), true
}

// Range iterates bindings in name order. If f returns false, iteration stops.
func (s Subst) Range(f func(name string, t types.Type) bool) {
	if s.m == nil {
		return
	}
	it := s.m.Iterator()
	for !it.Done() {
		k, v := it.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

// Domain returns the bound names in order.
func (s Subst) Domain() []string {
	out := make([]string, 0, s.Len())
	s.Range(func(name string, _ types.Type) bool {
		out = append(out, name)
		return true
	})
	return out
}

// Set returns a Subst with name additionally bound to t.
func (s Subst) Set(name string, t types.Type) Subst {
	base := empty
	if s.m != nil {
		base = s.m
	}
	return Subst{base.Set(name, t)}
}

// Delete returns a Subst with name unbound.
func (s Subst) Delete(name string) Subst {
	if s.m == nil {
		return s
	}
	if _, ok := s.m.Get(name); !ok {
		return s
	}
	return Subst{s.m.Delete(name)}
}

// Restrict returns the sub-map of s whose keys are in names.
func (s Subst) Restrict(names map[string]bool) Subst {
	b := immutable.NewSortedMapBuilder(empty)
	s.Range(func(name string, t types.Type) bool {
		if names[name] {
			b.Set(name, t)
		}
		return true
	})
	return Subst{b.Map()}
}

// Apply replaces every free unification variable in t with its binding in
// s, recursively, leaving unbound variables, skolems, and base atoms
// untouched.
func Apply(s Subst, t types.Type) types.Type {
	switch t := t.(type) {
	case types.BaseAtom:
		return t
	case *types.Var:
		if t.IsSkolem() {
			return t
		}
		if bound, ok := s.Lookup(t.Name); ok {
			return bound
		}
		return t
	case *types.Syn:
		return t
	case *types.Con:
		args := make([]types.Type, len(t.Args))
		changed := false
		for i, a := range t.Args {
			na := Apply(s, a)
			args[i] = na
			if na != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &types.Con{Ctor: t.Ctor, Args: args}
	}
	return t
}

// ApplyToName resolves a single name through s down to a type: its binding
// if s binds it, else the unification variable of that name.
func ApplyToName(s Subst, name string) types.Type {
	if bound, ok := s.Lookup(name); ok {
		return bound
	}
	return types.NewUnificationVar(name)
}

// Compose returns the substitution equivalent to applying s1 first, then
// s2: Apply(Compose(s1, s2), t) == Apply(s2, Apply(s1, t)) whenever no
// name is bound by both.
//
// The result holds s1's bindings with s2 applied through them, plus s2's
// own bindings; when a name is bound in both, s2's binding wins.
func Compose(s1, s2 Subst) Subst {
	b := immutable.NewSortedMapBuilder(empty)
	s1.Range(func(name string, t types.Type) bool {
		b.Set(name, Apply(s2, t))
		return true
	})
	s2.Range(func(name string, t types.Type) bool {
		b.Set(name, t)
		return true
	})
	return Subst{b.Map()}
}

// IsIdempotent reports whether applying s twice agrees with applying it
// once, for every binding currently in s — the invariant callers must
// maintain as they extend a substitution during solving.
func IsIdempotent(s Subst) bool {
	idempotent := true
	s.Range(func(_ string, t types.Type) bool {
		if !types.Equal(t, Apply(s, t)) {
			idempotent = false
			return false
		}
		return true
	})
	return idempotent
}
