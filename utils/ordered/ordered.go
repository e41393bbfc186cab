/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package ordered provides an immutable, insertion-ordered map.
//
// A Map is assembled once through a Builder and frozen. After Freeze the map
// never changes, so it can be shared between goroutines without locking.
package ordered

import "iter"

// Map is a read-only mapping that remembers insertion order.
// The zero value is an empty map.
type Map[K comparable, V any] struct {
	keys  []K
	vals  []V
	index map[K]int
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[k]
	return ok
}

// Index returns the insertion position of k.
func (m *Map[K, V]) Index(k K) (int, bool) {
	if m == nil {
		return -1, false
	}
	i, ok := m.index[k]
	if !ok {
		return -1, false
	}
	return i, true
}

// At returns the i-th entry in insertion order. It panics if i is out of range.
func (m *Map[K, V]) At(i int) (K, V) {
	return m.keys[i], m.vals[i]
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the values in insertion order.
func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// All iterates over the entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Convert returns a new frozen map with the same keys and order whose values
// are f applied to the values of m.
func Convert[K comparable, V, W any](m *Map[K, V], f func(V) W) *Map[K, W] {
	n := m.Len()
	out := &Map[K, W]{
		keys:  make([]K, n),
		vals:  make([]W, n),
		index: make(map[K]int, n),
	}
	if n == 0 {
		return out
	}
	copy(out.keys, m.keys)
	for i, v := range m.vals {
		out.vals[i] = f(v)
		out.index[m.keys[i]] = i
	}
	return out
}

// Builder accumulates entries for a Map. A Builder is not safe for
// concurrent use and must not be used after Freeze.
type Builder[K comparable, V any] struct {
	m *Map[K, V]
}

// NewBuilder returns a Builder with room for capacity entries.
func NewBuilder[K comparable, V any](capacity int) *Builder[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder[K, V]{m: &Map[K, V]{
		keys:  make([]K, 0, capacity),
		vals:  make([]V, 0, capacity),
		index: make(map[K]int, capacity),
	}}
}

// Insert appends (k, v). It returns false and leaves the builder unchanged
// when k is already present.
func (b *Builder[K, V]) Insert(k K, v V) bool {
	if _, dup := b.m.index[k]; dup {
		return false
	}
	b.m.index[k] = len(b.m.keys)
	b.m.keys = append(b.m.keys, k)
	b.m.vals = append(b.m.vals, v)
	return true
}

// Index returns the position at which k was inserted.
func (b *Builder[K, V]) Index(k K) (int, bool) {
	i, ok := b.m.index[k]
	if !ok {
		return -1, false
	}
	return i, true
}

// Len returns the number of entries inserted so far.
func (b *Builder[K, V]) Len() int {
	return len(b.m.keys)
}

// Freeze returns the finished Map and detaches it from the builder.
func (b *Builder[K, V]) Freeze() *Map[K, V] {
	m := b.m
	b.m = nil
	return m
}
