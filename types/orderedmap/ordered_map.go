package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key/value pairs and iterates them in insertion order. It is a typed
// facade over github.com/wk8/go-ordered-map, which predates generics and traffics in
// interface{} pairs.
type OrderedMap[K comparable, V any] struct {
	pairs *wk8.OrderedMap
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{pairs: wk8.New()}
}

// Set stores a key/value pair, overwriting the value when the key already exists. The
// key keeps its original insertion position on overwrite.
func (o *OrderedMap[K, V]) Set(key K, value V) {
	o.pairs.Set(key, value)
}

// Get returns the value associated with key; the second return value is false when the
// key is absent
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	value, found := o.pairs.Get(key)
	if !found {
		var zero V
		return zero, false
	}

	return value.(V), true
}

// Delete removes key and its value
func (o *OrderedMap[K, V]) Delete(key K) {
	o.pairs.Delete(key)
}

// Count returns the number of stored pairs
func (o *OrderedMap[K, V]) Count() int {
	return o.pairs.Len()
}

// Entry points at a key/value pair during iteration:
//
//	for e := m.Front(); e != nil; e = e.Next() {
//	    use(*e.Key, e.Value)
//	}
type Entry[K comparable, V any] struct {
	Key   *K
	Value V
	pair  *wk8.Pair
}

// Front returns an Entry for the oldest (inserted-first) pair, or nil when empty
func (o *OrderedMap[K, V]) Front() *Entry[K, V] {
	return wrapPair[K, V](o.pairs.Oldest())
}

// Back returns an Entry for the newest (inserted-last) pair, or nil when empty
func (o *OrderedMap[K, V]) Back() *Entry[K, V] {
	return wrapPair[K, V](o.pairs.Newest())
}

// Next returns the Entry following e in insertion order, or nil at the end
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return wrapPair[K, V](e.pair.Next())
}

// Prev returns the Entry preceding e in insertion order, or nil at the start
func (e *Entry[K, V]) Prev() *Entry[K, V] {
	return wrapPair[K, V](e.pair.Prev())
}

func wrapPair[K comparable, V any](pair *wk8.Pair) *Entry[K, V] {
	if pair == nil {
		return nil
	}
	key := pair.Key.(K)

	return &Entry[K, V]{
		Key:   &key,
		Value: pair.Value.(V),
		pair:  pair,
	}
}
