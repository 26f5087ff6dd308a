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

// discoinfer solves constraint systems for a strictly-typed functional
// language combining Hindley-Milner inference with coercive subtyping
// over a numeric base-type lattice and qualified polymorphism over a
// flat sort system.
//
// The package takes a constraint tree built by a caller's elaborator —
// conjunctions, disjunctions, universally quantified blocks, subtyping
// and equality constraints, and qualifier constraints over a small set
// of base-type predicates — and produces either a principal substitution
// or a structured error identifying which invariant failed.
//
//
// Supported features:
//
//   * Coercive subtyping over a fixed numeric tower (Nat <: Int <: Rational <: Real)
//   * Qualified polymorphism via sorts: num, sub, finite, bool, enum, container, ord
//   * Disjunctive constraints with backtracking over independent alternatives
//   * Universally quantified constraints, instantiated as rigid skolem variables
//   * Non-recursive type synonyms
//   * Constructor-level subtyping with per-argument variance (arrow, pair, sum, list)
//
//
// The solver is strictly synchronous: every entry point is a pure,
// terminating function of its inputs, seeded by a deterministic
// fresh-name generator so that repeated calls on identical input are
// reproducible.
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Coercive subtyping (qualified types survey background): https://en.wikipedia.org/wiki/Subtyping
package discoinfer
