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

import (
	"github.com/benbjohnson/immutable"
)

var emptySortMap = immutable.NewSortedMap(nil)

// EmptySortMap maps every variable name to the top sort.
var EmptySortMap = SortMap{emptySortMap}

// SortMap records the sort required of each unification variable,
// defaulting to the top sort for names with no entry.
type SortMap struct {
	m *immutable.SortedMap
}

// SingletonSortMap builds a SortMap with one entry.
func SingletonSortMap(name string, s Sort) SortMap {
	return SortMap{emptySortMap.Set(name, s)}
}

// Len returns the number of variables with a non-default sort entry.
func (m SortMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get returns the recorded sort for name, or TopSort if name has no entry.
func (m SortMap) Get(name string) Sort {
	if m.m == nil {
		return TopSort
	}
	v, ok := m.m.Get(name)
	if !ok {
		return TopSort
	}
	return v.(Sort)
}

// Range iterates entries in name order. If f returns false, iteration stops.
func (m SortMap) Range(f func(name string, s Sort) bool) {
	if m.m == nil {
		return
	}
	it := m.m.Iterator()
	for !it.Done() {
		k, v := it.Next()
		if !f(k.(string), v.(Sort)) {
			return
		}
	}
}

// Union merges two sort maps, combining the sort recorded for any name
// present in both by unioning their qualifiers.
func (m SortMap) Union(other SortMap) SortMap {
	if other.Len() == 0 {
		return m
	}
	b := immutable.NewSortedMapBuilder(emptySortMap)
	m.Range(func(name string, s Sort) bool {
		b.Set(name, s)
		return true
	})
	other.Range(func(name string, s Sort) bool {
		if existing, ok := b.Get(name); ok {
			s = existing.(Sort).Union(s)
		}
		b.Set(name, s)
		return true
	})
	return SortMap{b.Map()}
}

// Delete returns a SortMap without the entry for name.
func (m SortMap) Delete(name string) SortMap {
	if m.m == nil {
		return m
	}
	if _, ok := m.m.Get(name); !ok {
		return m
	}
	return SortMap{m.m.Delete(name)}
}

// Set returns a SortMap with name mapped to s.
func (m SortMap) Set(name string, s Sort) SortMap {
	base := emptySortMap
	if m.m != nil {
		base = m.m
	}
	return SortMap{base.Set(name, s)}
}
