package storage

import (
	"github.com/google/btree"
)

const defaultDegree = 32

type entry[K, V any] struct {
	key   K
	value V
}

// keyDir holds every entry exactly once, ordered by key. The tree node that
// orders a key also carries its value, so the index and the stored values
// can never disagree.
type keyDir[K, V any] struct {
	tree *btree.BTreeG[*entry[K, V]]
}

func newKeyDir[K, V any](degree int, less func(a, b K) bool) *keyDir[K, V] {
	if degree < 2 {
		degree = defaultDegree
	}
	return &keyDir[K, V]{
		tree: btree.NewG(degree, func(a, b *entry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

func (k *keyDir[K, V]) Len() int {
	return k.tree.Len()
}

// Set overwrites the value of an existing entry in place, so pointers handed
// out by Get stay valid.
func (k *keyDir[K, V]) Set(key K, value V) {
	if e, ok := k.tree.Get(&entry[K, V]{key: key}); ok {
		e.value = value
		return
	}
	k.tree.ReplaceOrInsert(&entry[K, V]{key: key, value: value})
}

func (k *keyDir[K, V]) Get(key K) (*entry[K, V], bool) {
	return k.tree.Get(&entry[K, V]{key: key})
}

func (k *keyDir[K, V]) Has(key K) bool {
	return k.tree.Has(&entry[K, V]{key: key})
}

func (k *keyDir[K, V]) Delete(key K) (*entry[K, V], bool) {
	return k.tree.Delete(&entry[K, V]{key: key})
}

// Floor returns the entry with the greatest key <= key.
func (k *keyDir[K, V]) Floor(key K) (*entry[K, V], bool) {
	var found *entry[K, V]
	k.tree.DescendLessOrEqual(&entry[K, V]{key: key}, func(e *entry[K, V]) bool {
		found = e
		return false
	})
	return found, found != nil
}

func (k *keyDir[K, V]) Max() (*entry[K, V], bool) {
	return k.tree.Max()
}
