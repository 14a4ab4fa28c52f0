// Package session holds the per-user conversational state: the active input
// mode and any extracted entries staged behind a confirmation prompt. All
// state lives in memory and is lost on restart, which is acceptable because
// nothing here has been confirmed by the user yet.
package session

import "sync"

const shardCount = 16

// Store is a sharded map keyed by user ID, safe for concurrent use. Sharding
// keeps one user's update from contending with every other user's; updates
// for the same user arrive sequentially anyway.
type Store[V any] struct {
	shards [shardCount]shard[V]
}

type shard[V any] struct {
	mu sync.RWMutex
	m  map[int64]V
}

// NewStore creates an empty sharded store.
func NewStore[V any]() *Store[V] {
	s := &Store[V]{}
	for i := range s.shards {
		s.shards[i].m = make(map[int64]V)
	}
	return s
}

func (s *Store[V]) shard(key int64) *shard[V] {
	// Mix the sign bit away before taking the remainder.
	return &s.shards[uint64(key)%shardCount]
}

// Get returns the value for key and whether it was present.
func (s *Store[V]) Get(key int64) (V, bool) {
	sh := s.shard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store[V]) Set(key int64, value V) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.m[key] = value
}

// Delete removes key.
func (s *Store[V]) Delete(key int64) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, key)
}

// Take returns the value for key and removes it in one step.
func (s *Store[V]) Take(key int64) (V, bool) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	v, ok := sh.m[key]
	if ok {
		delete(sh.m, key)
	}
	return v, ok
}
