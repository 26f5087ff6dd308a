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
	"github.com/disco-lang/discoinfer/constraint"
	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// Context is a reusable handle for solving constraints against a shared
// set of type-synonym definitions.
//
// A Context cannot be used concurrently.
type Context struct {
	Defs map[string]types.Type
}

// NewContext creates a solving context over defs. A nil defs is treated
// as an empty synonym table.
func NewContext(defs map[string]types.Type) *Context {
	if defs == nil {
		defs = map[string]types.Type{}
	}
	return &Context{Defs: defs}
}

// Solve is Context's entry point: it reduces c to a principal
// substitution, or returns the *types.SolveError describing why no
// solution exists.
func (ctx *Context) Solve(c constraint.Constraint) (subst.Subst, error) {
	return Solve(ctx.Defs, c)
}
