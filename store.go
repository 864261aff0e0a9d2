package circumflex

import "sync"

// Store is a plain string-keyed value store consumed by Container.
//
// Implementations are not required to be safe for concurrent mutation:
// MapStore is not, SyncStore and CacheMap are.
type Store interface {
	// Load returns the stored value.
	Load(key string) (interface{}, bool)

	// Store sets the value.
	Store(key string, value interface{})

	// Delete removes the value.
	Delete(key string)

	// Range calls f for every entry until f returns false.
	Range(f func(key string, value interface{}) bool)
}

var (
	_ Store = MapStore{}
	_ Store = &SyncStore{}
	_ Store = &CacheMap[interface{}]{}
	_ Store = NoOp{}
)

// MapStore is a plain map store without internal locking.
//
// Mutation is expected to happen in a single-writer phase before concurrent
// reads begin, this is a documented constraint and is not enforced. Wrap in
// SyncStore when concurrent mutation is required.
type MapStore map[string]interface{}

// Load gets value.
func (m MapStore) Load(key string) (interface{}, bool) {
	v, ok := m[key]

	return v, ok
}

// Store sets value.
func (m MapStore) Store(key string, value interface{}) {
	m[key] = value
}

// Delete removes value.
func (m MapStore) Delete(key string) {
	delete(m, key)
}

// Range iterates entries.
func (m MapStore) Range(f func(key string, value interface{}) bool) {
	for k, v := range m {
		if !f(k, v) {
			break
		}
	}
}

// SyncStore guards a map store with a read-write lock.
type SyncStore struct {
	mu   sync.RWMutex
	data MapStore
}

// NewSyncStore creates an empty synchronized store.
func NewSyncStore() *SyncStore {
	return &SyncStore{data: MapStore{}}
}

// Load gets value.
func (s *SyncStore) Load(key string) (interface{}, bool) {
	s.mu.RLock()
	v, ok := s.data[key]
	s.mu.RUnlock()

	return v, ok
}

// Store sets value.
func (s *SyncStore) Store(key string, value interface{}) {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
}

// Delete removes value.
func (s *SyncStore) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// Range iterates entries, mutation from within f deadlocks.
func (s *SyncStore) Range(f func(key string, value interface{}) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for k, v := range s.data {
		if !f(k, v) {
			break
		}
	}
}

// Len returns number of stored entries.
func (s *SyncStore) Len() int {
	s.mu.RLock()
	cnt := len(s.data)
	s.mu.RUnlock()

	return cnt
}

// NoOp is a Store stub.
type NoOp struct{}

// Load does not find anything.
func (NoOp) Load(key string) (interface{}, bool) {
	return nil, false
}

// Store discards value.
func (NoOp) Store(key string, value interface{}) {}

// Delete does nothing.
func (NoOp) Delete(key string) {}

// Range iterates nothing.
func (NoOp) Range(f func(key string, value interface{}) bool) {}
