// Package storage provides LatestMap, an ordered map answering "value as of
// key K" queries, and Store, a versioned keyspace built on top of it.
package storage

import "cmp"

// LatestMap maps ordered keys to values and resolves lookups to the greatest
// stored key that is less than or equal to the query.
//
// GetLatest and PopLatest resolve the floor of the query key. GetMut and
// ContainsKey match the exact key only.
//
// A LatestMap is not safe for concurrent use. Concurrent readers are fine as
// long as no mutation (Insert, GetMut, PopLatest) runs at the same time.
type LatestMap[K, V any] struct {
	dir *keyDir[K, V]
}

// New returns an empty LatestMap ordered by cmp.Less.
func New[K cmp.Ordered, V any](opts ...Option) *LatestMap[K, V] {
	return NewFunc[K, V](cmp.Less[K], opts...)
}

// NewFunc returns an empty LatestMap ordered by less, which must be a strict
// weak ordering that treats two keys as equal exactly when neither is less
// than the other. An inconsistent ordering silently corrupts floor lookups.
func NewFunc[K, V any](less func(a, b K) bool, opts ...Option) *LatestMap[K, V] {
	o := newOptions(opts)
	return &LatestMap[K, V]{
		dir: newKeyDir[K, V](o.degree, less),
	}
}

// Insert stores value under key, overwriting the value of an existing key.
func (m *LatestMap[K, V]) Insert(key K, value V) {
	m.dir.Set(key, value)
}

// GetLatest returns the value of the greatest key <= key.
func (m *LatestMap[K, V]) GetLatest(key K) (V, bool) {
	e, ok := m.dir.Floor(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetLastWithKey returns the entry with the greatest key.
func (m *LatestMap[K, V]) GetLastWithKey() (K, V, bool) {
	e, ok := m.dir.Max()
	if !ok {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	return e.key, e.value, true
}

// GetMut returns a pointer to the value stored under exactly key, or nil.
// The pointer stays valid until the key is removed.
func (m *LatestMap[K, V]) GetMut(key K) *V {
	e, ok := m.dir.Get(key)
	if !ok {
		return nil
	}
	return &e.value
}

func (m *LatestMap[K, V]) ContainsKey(key K) bool {
	return m.dir.Has(key)
}

// PopLatest removes the entry GetLatest(key) would return and returns it.
// This is not necessarily the entry with the greatest key.
func (m *LatestMap[K, V]) PopLatest(key K) (K, V, bool) {
	e, ok := m.dir.Floor(key)
	if !ok {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	m.dir.Delete(e.key)
	return e.key, e.value, true
}

func (m *LatestMap[K, V]) Len() int {
	return m.dir.Len()
}

func (m *LatestMap[K, V]) Status() *Status {
	n := uint64(m.dir.Len())
	return &Status{
		Name:     "latestmap",
		Keys:     n,
		Versions: n,
	}
}
