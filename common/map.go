package common

import "fmt"

type Map[K comparable, V any] map[K]V

func NewMap[K comparable, V any]() Map[K, V] {
	return make(Map[K, V])
}

func (m Map[K, V]) Add(k K, v V) {
	m[k] = v
}

func (m Map[K, V]) Contains(k K) bool {
	_, ok := m[k]
	return ok
}

func (m Map[K, V]) Remove(k K) {
	delete(m, k)
}

func (m Map[K, V]) Merge(other Map[K, V]) {
	for k, v := range other {
		m.Add(k, v)
	}
}

func (m Map[K, V]) MergeStrict(other Map[K, V]) error {
	for k, v := range other {
		if m.Contains(k) {
			return fmt.Errorf("key %v already exists", k)
		}
		m.Add(k, v)
	}
	return nil
}

func (m Map[K, V]) Keys() Set[K] {
	result := NewSet[K]()
	for k := range m {
		result.Add(k)
	}
	return result
}

// OrderedMap preserves insertion order on iteration. Setting an existing
// key overwrites the value but keeps the key's original position.
type OrderedMap[K comparable, V any] struct {
	keys    []K
	entries map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.entries[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.entries[k] = v
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *OrderedMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys
}

func (m *OrderedMap[K, V]) Iter(f func(K, V)) {
	for _, k := range m.keys {
		f(k, m.entries[k])
	}
}

func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := NewOrderedMap[K, V]()
	for _, k := range m.keys {
		result.Set(k, m.entries[k])
	}
	return result
}
