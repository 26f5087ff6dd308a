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

	"github.com/disco-lang/discoinfer/constraint"
	"github.com/disco-lang/discoinfer/subst"
	"github.com/disco-lang/discoinfer/types"
)

// simplifier owns the mutable workspace for one solveAlternative call:
// the running sort map, the worklist of simple constraints, the
// accumulated substitution, and the set of constraints already reduced
// once (so a constraint reached again by a different path is skipped
// rather than reprocessed forever).
type simplifier struct {
	defs    map[string]types.Type
	sorts   types.SortMap
	simples []constraint.Simple
	s       subst.Subst
	seen    map[string]bool
	gen     *types.FreshGen
}

func newSimplifier(defs map[string]types.Type, sorts types.SortMap, simples []constraint.Simple, gen *types.FreshGen) *simplifier {
	return &simplifier{
		defs:    defs,
		sorts:   sorts,
		simples: append([]constraint.Simple(nil), simples...),
		s:       subst.Empty,
		seen:    map[string]bool{},
		gen:     gen,
	}
}

// run reduces sp.simples to a list of atomic Atom <: Atom constraints,
// or fails.
func (sp *simplifier) run() error {
	for {
		idx := sp.pickSimplifiable()
		if idx < 0 {
			return nil
		}
		c := sp.simples[idx]
		sp.simples = append(sp.simples[:idx], sp.simples[idx+1:]...)
		key := simpleKey(c)
		if sp.seen[key] {
			continue
		}
		sp.seen[key] = true
		if err := sp.reduce(c); err != nil {
			return err
		}
	}
}

func simpleKey(c constraint.Simple) string {
	return fmt.Sprintf("%d:%v<>%v", c.Rel, c.T1, c.T2)
}

// pickSimplifiable finds the first constraint that is an equality, a
// synonym reference on either side, a subtyping constraint between two
// constructor applications or a variable and a constructor, or a
// subtyping constraint between two base atoms.
func (sp *simplifier) pickSimplifiable() int {
	for i, c := range sp.simples {
		if c.Rel == constraint.RelEq {
			return i
		}
		if isSyn(c.T1) || isSyn(c.T2) {
			return i
		}
		_, t1Con := c.T1.(*types.Con)
		_, t2Con := c.T2.(*types.Con)
		_, t1Var := c.T1.(*types.Var)
		_, t2Var := c.T2.(*types.Var)
		if t1Con && t2Con {
			return i
		}
		if (t1Var && t2Con) || (t1Con && t2Var) {
			return i
		}
		_, t1Base := c.T1.(types.BaseAtom)
		_, t2Base := c.T2.(types.BaseAtom)
		if t1Base && t2Base {
			return i
		}
	}
	return -1
}

func isSyn(t types.Type) bool {
	_, ok := t.(*types.Syn)
	return ok
}

func (sp *simplifier) reduce(c constraint.Simple) error {
	switch {
	case c.Rel == constraint.RelEq:
		s2, err := unify(sp.defs, []eq{{c.T1, c.T2}})
		if err != nil {
			return err
		}
		return sp.extendSubst(s2)

	case isSyn(c.T1) || isSyn(c.T2):
		return sp.expandSyn(c)

	default:
		con1, t1Con := c.T1.(*types.Con)
		con2, t2Con := c.T2.(*types.Con)
		if t1Con && t2Con {
			return sp.reduceConCon(c.Rel, con1, con2)
		}
		if v, ok := c.T1.(*types.Var); ok && t2Con {
			return sp.reduceVarCon(v, con2, true)
		}
		if v, ok := c.T2.(*types.Var); ok && t1Con {
			return sp.reduceVarCon(v, con1, false)
		}
		b1, b1ok := c.T1.(types.BaseAtom)
		b2, b2ok := c.T2.(types.BaseAtom)
		if b1ok && b2ok {
			if types.SubBase(b1, b2) {
				return nil
			}
			return types.NewNoUnify(fmt.Errorf("base type %s is not a subtype of %s", b1, b2))
		}
	}
	return types.NewNoUnify(fmt.Errorf("cannot simplify %v %s %v", c.T1, c.Rel, c.T2))
}

// reduceConCon decomposes C(ts) <: C(us) into one constraint per
// argument, flipping the relation for contravariant positions. Equality
// constraints never reach here: they are always picked and unified
// directly, regardless of shape.
func (sp *simplifier) reduceConCon(rel constraint.Rel, c1, c2 *types.Con) error {
	if c1.Ctor != c2.Ctor || len(c1.Args) != len(c2.Args) {
		return types.NewNoUnify(fmt.Errorf("cannot relate %s to %s", c1.Ctor, c2.Ctor))
	}
	variances := c1.Ctor.ArgVariance()
	for i := range c1.Args {
		lo, hi := c1.Args[i], c2.Args[i]
		if variances[i] == types.Contravariant {
			lo, hi = hi, lo
		}
		sp.simples = append(sp.simples, constraint.Simple{Rel: constraint.RelSub, T1: lo, T2: hi})
	}
	return nil
}

// reduceVarCon handles `v <: C(_)` (varIsLower true) or `C(_) <: v`:
// it binds v to a fresh constructor application of matching shape, then
// re-enqueues the original constraint (now structurally reducible).
func (sp *simplifier) reduceVarCon(v *types.Var, c *types.Con, varIsLower bool) error {
	if v.IsSkolem() {
		return types.NewNoUnify(fmt.Errorf("rigid variable %s cannot be constrained to the shape of %s", v.Name, c.Ctor))
	}
	args := make([]types.Type, c.Ctor.Arity())
	for i := range args {
		args[i] = sp.gen.NewUnificationVar()
	}
	fresh := &types.Con{Ctor: c.Ctor, Args: args}
	s1 := subst.Singleton(v.Name, fresh)
	var rebuilt constraint.Simple
	if varIsLower {
		rebuilt = constraint.Simple{Rel: constraint.RelSub, T1: fresh, T2: c}
	} else {
		rebuilt = constraint.Simple{Rel: constraint.RelSub, T1: c, T2: fresh}
	}
	if err := sp.extendSubst(s1); err != nil {
		return err
	}
	sp.simples = append(sp.simples, rebuilt)
	return nil
}

func (sp *simplifier) expandSyn(c constraint.Simple) error {
	t1, err := sp.resolveOneSyn(c.T1)
	if err != nil {
		return err
	}
	t2, err := sp.resolveOneSyn(c.T2)
	if err != nil {
		return err
	}
	sp.simples = append(sp.simples, constraint.Simple{Rel: c.Rel, T1: t1, T2: t2})
	return nil
}

func (sp *simplifier) resolveOneSyn(t types.Type) (types.Type, error) {
	syn, ok := t.(*types.Syn)
	if !ok {
		return t, nil
	}
	def, ok := sp.defs[syn.Name]
	if !ok {
		return nil, types.NewUnknown(syn.Name)
	}
	return def, nil
}

// extendSubst composes s' into the running substitution, applies s' to
// every remaining simple constraint, and propagates s' through the sort
// map: a variable bound to t inherits t's qualifier obligations from the
// variable's recorded sort.
func (sp *simplifier) extendSubst(s1 subst.Subst) error {
	if s1.Len() == 0 {
		return nil
	}
	sp.s = subst.Compose(sp.s, s1)
	for i, c := range sp.simples {
		sp.simples[i] = constraint.Simple{Rel: c.Rel, T1: subst.Apply(s1, c.T1), T2: subst.Apply(s1, c.T2)}
	}
	for _, name := range s1.Domain() {
		bound, _ := s1.Lookup(name)
		sort := sp.sorts.Get(name)
		if sort.IsTop() {
			continue
		}
		sp.sorts = sp.sorts.Delete(name)
		for _, q := range sort.Qualifiers() {
			qsorts, err := constraint.DecomposeQual(bound, q)
			if err != nil {
				return err
			}
			sp.sorts = sp.sorts.Union(qsorts)
		}
	}
	return nil
}
