// Package kv provides a string-keyed blob store: synchronous get/set/remove
// of string values, durable across restarts when file-backed.
package kv

// Store is a persistent string-keyed blob store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Memory is an in-memory Store for tests and throwaway sessions.
type Memory struct {
	m map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: map[string]string{}}
}

func (s *Memory) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *Memory) Remove(key string) error {
	delete(s.m, key)
	return nil
}
