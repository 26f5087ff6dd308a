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

// ArgQual is one entry of a qualification rule: whether a constructor
// argument position must itself carry a qualifier when the constructed
// type must satisfy some outer qualifier.
type ArgQual struct {
	Required bool
	Qual     Qualifier
}

// qualRules maps (constructor, qualifier) to one ArgQual per argument
// position. A missing entry means the qualifier cannot hold for that
// constructor and decomposition must fail.
var qualRules = map[Ctor]map[Qualifier][]ArgQual{
	CtorList: {
		QualContainer: {{}},
		QualEnum:      {{Required: true, Qual: QualEnum}},
		QualOrd:       {{Required: true, Qual: QualOrd}},
	},
	CtorPair: {
		QualEnum: {{Required: true, Qual: QualEnum}, {Required: true, Qual: QualEnum}},
		QualOrd:  {{Required: true, Qual: QualOrd}, {Required: true, Qual: QualOrd}},
	},
	CtorSum: {
		QualEnum: {{Required: true, Qual: QualEnum}, {Required: true, Qual: QualEnum}},
		QualOrd:  {{Required: true, Qual: QualOrd}, {Required: true, Qual: QualOrd}},
	},
}

// QualRule looks up the qualification rule for a constructor and
// qualifier. ok is false when the qualifier is intrinsically impossible
// for the constructor (no rule is declared).
func QualRule(c Ctor, q Qualifier) (args []ArgQual, ok bool) {
	byQual, ok := qualRules[c]
	if !ok {
		return nil, false
	}
	args, ok = byQual[q]
	return args, ok
}
