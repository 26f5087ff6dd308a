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

import "github.com/disco-lang/discoinfer/types"

// DecomposeQual resolves a `Qual q t` constraint down to a SortMap
// recording what each free unification variable of t must satisfy. It is
// exported so the simplifier can re-run qualifier decomposition when a
// substitution narrows a sorted variable to a concrete type.
func DecomposeQual(t types.Type, q types.Qualifier) (types.SortMap, error) {
	return decomposeQual(t, q)
}

// decomposeQual implements the qualifier-decomposition table: it resolves
// a `Qual q t` constraint down to a SortMap recording what each free
// unification variable of t must satisfy, or fails when t can be shown
// never to satisfy q.
func decomposeQual(t types.Type, q types.Qualifier) (types.SortMap, error) {
	switch a := t.(type) {
	case *types.Var:
		if a.IsSkolem() {
			return types.EmptySortMap, types.NewQualSkolem(q, a.Name)
		}
		return types.SingletonSortMap(a.Name, types.TopSort.With(q)), nil
	case types.BaseAtom:
		if types.HasQual(a, q) {
			return types.EmptySortMap, nil
		}
		return types.EmptySortMap, types.NewUnqualBase(q, a)
	case *types.Con:
		argQuals, ok := types.QualRule(a.Ctor, q)
		if !ok {
			return types.EmptySortMap, types.NewUnqual(q, t)
		}
		sorts := types.EmptySortMap
		for i, aq := range argQuals {
			if !aq.Required {
				continue
			}
			sub, err := decomposeQual(a.Args[i], aq.Qual)
			if err != nil {
				return types.EmptySortMap, err
			}
			sorts = sorts.Union(sub)
		}
		return sorts, nil
	case *types.Syn:
		return types.EmptySortMap, types.NewUnqual(q, t)
	}
	return types.EmptySortMap, types.NewUnqual(q, t)
}
