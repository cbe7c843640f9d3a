package storage

import (
	"fmt"
	"log/slog"
	"sync"
)

type Version uint64

type record[V any] struct {
	value   V
	deleted bool
}

// Store is a versioned keyspace. Every write is assigned the next version,
// and reads can be made as of any past version. Each key keeps its history
// in a LatestMap keyed by Version.
//
// Store is safe for concurrent use.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	keys    map[K]*LatestMap[Version, record[V]]
	version Version
	degree  int
	log     *slog.Logger
}

func NewStore[K comparable, V any](opts ...Option) *Store[K, V] {
	o := newOptions(opts)
	return &Store[K, V]{
		keys:   make(map[K]*LatestMap[Version, record[V]]),
		degree: o.degree,
		log:    o.logger,
	}
}

// Set writes value for key at the next version and returns that version.
func (s *Store[K, V]) Set(key K, value V) Version {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(key, record[V]{value: value})
}

// Delete writes a tombstone for key at the next version. If the key has no
// live value nothing is written and false is returned.
func (s *Store[K, V]) Delete(key K) (Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getAsOf(key, s.version); !ok {
		return 0, false
	}
	return s.write(key, record[V]{deleted: true}), true
}

func (s *Store[K, V]) write(key K, rec record[V]) Version {
	history, ok := s.keys[key]
	if !ok {
		history = New[Version, record[V]](WithDegree(s.degree))
		s.keys[key] = history
	}

	s.version++
	history.Insert(s.version, rec)

	s.log.Debug("write", "key", key, "version", s.version, "deleted", rec.deleted)
	return s.version
}

// Get returns the current value of key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getAsOf(key, s.version)
}

// GetAsOf returns the value key had at version: the value of its last write
// at or before version, unless that write was a delete.
func (s *Store[K, V]) GetAsOf(key K, version Version) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getAsOf(key, version)
}

func (s *Store[K, V]) getAsOf(key K, version Version) (V, bool) {
	var zero V
	history, ok := s.keys[key]
	if !ok {
		return zero, false
	}
	rec, ok := history.GetLatest(version)
	if !ok || rec.deleted {
		return zero, false
	}
	return rec.value, true
}

// Latest returns the version and value of the last write to key. It returns
// false if key was never written or its last write was a delete.
func (s *Store[K, V]) Latest(key K) (Version, V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	history, ok := s.keys[key]
	if !ok {
		return 0, zero, false
	}
	version, rec, ok := history.GetLastWithKey()
	if !ok || rec.deleted {
		return 0, zero, false
	}
	return version, rec.value, true
}

// Revert drops the write of key that was visible at version and returns the
// version it was made at. Reads of key then fall through to the write before
// it. The store's version counter is not rolled back.
func (s *Store[K, V]) Revert(key K, version Version) (Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.keys[key]
	if !ok {
		return 0, false
	}
	removed, _, ok := history.PopLatest(version)
	if !ok {
		return 0, false
	}
	if history.Len() == 0 {
		delete(s.keys, key)
	}

	s.log.Info("reverted write", "key", key, "version", removed, "as_of", version)
	return removed, true
}

// Version returns the last assigned version, or 0 before the first write.
func (s *Store[K, V]) Version() Version {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Begin returns a snapshot pinned to the current version.
func (s *Store[K, V]) Begin() *Snapshot[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Snapshot[K, V]{store: s, version: s.version}
}

// Snapshot returns a read view pinned to version.
func (s *Store[K, V]) Snapshot(version Version) (*Snapshot[K, V], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if version > s.version {
		return nil, fmt.Errorf("snapshot at %d (latest %d): %w", version, s.version, ErrFutureVersion)
	}
	return &Snapshot[K, V]{store: s, version: version}, nil
}

func (s *Store[K, V]) Status() *Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := &Status{
		Name: "mvcc",
		Keys: uint64(len(s.keys)),
	}
	for _, history := range s.keys {
		status.Versions += uint64(history.Len())
	}
	return status
}

// Snapshot reads a Store as of a fixed version. Writes made after the
// snapshot are not visible, but reverts are.
type Snapshot[K comparable, V any] struct {
	store   *Store[K, V]
	version Version
}

func (sn *Snapshot[K, V]) Version() Version {
	return sn.version
}

func (sn *Snapshot[K, V]) Get(key K) (V, bool) {
	return sn.store.GetAsOf(key, sn.version)
}
