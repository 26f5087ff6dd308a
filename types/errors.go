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

package types

// ErrKind enumerates the structured failure modes Solve can return.
type ErrKind int

const (
	ErrNoUnify ErrKind = iota
	ErrNoWeakUnifier
	ErrUnqualBase
	ErrUnqual
	ErrQualSkolem
	ErrUnknown
)

func (k ErrKind) String() string {
	switch k {
	case ErrNoUnify:
		return "NoUnify"
	case ErrNoWeakUnifier:
		return "NoWeakUnifier"
	case ErrUnqualBase:
		return "UnqualBase"
	case ErrUnqual:
		return "Unqual"
	case ErrQualSkolem:
		return "QualSkolem"
	case ErrUnknown:
		return "Unknown"
	}
	return "SolveError?"
}

// SolveError is the structured diagnostic Solve returns on failure. Which
// payload fields are meaningful depends on Kind, as noted on each field.
type SolveError struct {
	Kind      ErrKind
	Qualifier Qualifier // ErrUnqualBase, ErrUnqual, ErrQualSkolem
	BaseAtom  BaseAtom  // ErrUnqualBase
	Type      Type      // ErrUnqual
	Var       string    // ErrQualSkolem, ErrUnknown
	Cause     error     // ErrNoUnify, ErrNoWeakUnifier: the underlying unification failure
}

func (e *SolveError) Error() string {
	switch e.Kind {
	case ErrNoUnify:
		if e.Cause != nil {
			return "no unifier: " + e.Cause.Error()
		}
		return "no unifier"
	case ErrNoWeakUnifier:
		if e.Cause != nil {
			return "no weak unifier: " + e.Cause.Error()
		}
		return "no weak unifier"
	case ErrUnqualBase:
		return "base type " + e.BaseAtom.String() + " does not satisfy " + e.Qualifier.String()
	case ErrUnqual:
		ty := "<nil>"
		if e.Type != nil {
			ty = e.Type.TypeName()
		}
		return "no rule for qualifier " + e.Qualifier.String() + " on " + ty
	case ErrQualSkolem:
		return "rigid variable " + e.Var + " cannot satisfy qualifier " + e.Qualifier.String()
	case ErrUnknown:
		return "unknown type synonym " + e.Var
	}
	return "solve error"
}

// Unwrap exposes the underlying low-level failure, when there is one, so
// callers can use errors.Is/errors.As against it.
func (e *SolveError) Unwrap() error { return e.Cause }

func NewNoUnify(cause error) *SolveError        { return &SolveError{Kind: ErrNoUnify, Cause: cause} }
func NewNoWeakUnifier(cause error) *SolveError  { return &SolveError{Kind: ErrNoWeakUnifier, Cause: cause} }
func NewUnqualBase(q Qualifier, b BaseAtom) *SolveError {
	return &SolveError{Kind: ErrUnqualBase, Qualifier: q, BaseAtom: b}
}
func NewUnqual(q Qualifier, t Type) *SolveError {
	return &SolveError{Kind: ErrUnqual, Qualifier: q, Type: t}
}
func NewQualSkolem(q Qualifier, varName string) *SolveError {
	return &SolveError{Kind: ErrQualSkolem, Qualifier: q, Var: varName}
}
func NewUnknown(name string) *SolveError { return &SolveError{Kind: ErrUnknown, Var: name} }
