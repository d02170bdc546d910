// Package hash implements a chained hash map whose buckets are list.Lists.
package hash

import (
	"math"

	"SimpleList/list"
	"SimpleList/utils"
	"SimpleList/utils/errs"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a hash map with separate chaining. Each bucket is a list of entries;
// rehashing splices the existing nodes into the new buckets, so iterators
// returned by Find survive a rehash. Iterators are invalidated by Erase and
// Clear of their entry. A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	buckets []*list.List[Entry[K, V]]
	size    int
	maxLoad float64
	hasher  Hasher[K]
	alloc   list.Allocator[Entry[K, V]]
}

// New returns an empty map configured by opt. A nil opt selects
// utils.DefaultOptions. Entries live in an arena sized by ArenaBlockSize and
// bounded by ArenaMaxNodes.
func New[K comparable, V any](opt *utils.Options) (*Map[K, V], error) {
	return NewWithHasher[K, V](opt, DefaultHasher[K]())
}

// NewWithHasher is New with a custom hash function.
func NewWithHasher[K comparable, V any](opt *utils.Options, h Hasher[K]) (*Map[K, V], error) {
	if opt == nil {
		opt = utils.DefaultOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	m := &Map[K, V]{
		maxLoad: opt.MaxLoadFactor,
		hasher:  h,
		alloc:   list.NewArenaWithOptions[Entry[K, V]](opt),
	}
	m.buckets = m.newBuckets(opt.BucketCount)
	return m, nil
}

func (m *Map[K, V]) newBuckets(n int) []*list.List[Entry[K, V]] {
	buckets := make([]*list.List[Entry[K, V]], n)
	for i := range buckets {
		buckets[i] = list.NewWithAllocator(m.alloc)
	}
	return buckets
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

func (m *Map[K, V]) BucketCount() int {
	return len(m.buckets)
}

// Bucket returns the index of the bucket key belongs to.
func (m *Map[K, V]) Bucket(key K) int {
	return int(m.hasher(key) % uint64(len(m.buckets)))
}

// BucketSize returns the number of entries in bucket i.
func (m *Map[K, V]) BucketSize(i int) int {
	return m.buckets[i].Len()
}

func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Find returns an iterator to the entry of key within its bucket.
func (m *Map[K, V]) Find(key K) (list.Iterator[Entry[K, V]], bool) {
	b := m.buckets[m.Bucket(key)]
	for it := b.Begin(); !it.IsEnd(); it = it.Next() {
		if it.Ref().Key == key {
			return it, true
		}
	}
	return b.End(), false
}

// Get returns the value of key, or errs.ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	if it, ok := m.Find(key); ok {
		return it.Ref().Value, nil
	}
	var zero V
	return zero, errs.ErrKeyNotFound
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Put sets the value of key and reports whether key was newly inserted.
func (m *Map[K, V]) Put(key K, value V) bool {
	if it, ok := m.Find(key); ok {
		it.Ref().Value = value
		return false
	}
	b := m.buckets[m.Bucket(key)]
	b.PushBack(Entry[K, V]{Key: key, Value: value})
	m.size++
	if m.LoadFactor() > m.maxLoad {
		m.Rehash(len(m.buckets) * 2)
	}
	return true
}

// TryPut is Put returning the allocation failure of a bounded arena as an
// error instead of panicking. The map is unchanged on failure.
func (m *Map[K, V]) TryPut(key K, value V) (inserted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, errs.ErrNoSpace) {
				panic(r)
			}
			inserted, err = false, errs.Err(e)
		}
	}()
	return m.Put(key, value), nil
}

// Erase removes key and reports whether it was present.
func (m *Map[K, V]) Erase(key K) bool {
	it, ok := m.Find(key)
	if !ok {
		return false
	}
	m.buckets[m.Bucket(key)].Erase(it)
	m.size--
	return true
}

// Clear removes every entry but keeps the bucket count.
func (m *Map[K, V]) Clear() {
	for _, b := range m.buckets {
		b.Clear()
	}
	m.size = 0
}

// Rehash redistributes the entries over n buckets. n is raised to the least
// count that keeps the load factor within bounds.
func (m *Map[K, V]) Rehash(n int) {
	if least := int(math.Ceil(float64(m.size) / m.maxLoad)); n < least {
		n = least
	}
	if n < 1 {
		n = 1
	}
	if n == len(m.buckets) {
		return
	}
	logrus.WithFields(logrus.Fields{
		"from": len(m.buckets),
		"to":   n,
		"size": m.size,
	}).Debug("rehash")

	old := m.buckets
	m.buckets = m.newBuckets(n)
	for _, b := range old {
		for it := b.Begin(); !it.IsEnd(); {
			next := it.Next()
			dst := m.buckets[m.Bucket(it.Ref().Key)]
			dst.Splice(dst.End(), b, it)
			it = next
		}
	}
}

// Reserve makes room for n entries without exceeding the max load factor.
// It never shrinks the bucket array.
func (m *Map[K, V]) Reserve(n int) {
	need := int(math.Ceil(float64(n) / m.maxLoad))
	if need <= len(m.buckets) {
		return
	}
	m.Rehash(need)
}

// Each calls fn for every entry until fn returns false. fn must not insert
// or erase entries.
func (m *Map[K, V]) Each(fn func(key K, value *V) bool) {
	for _, b := range m.buckets {
		for it := b.Begin(); !it.IsEnd(); it = it.Next() {
			e := it.Ref()
			if !fn(e.Key, &e.Value) {
				return
			}
		}
	}
}

// Keys returns every key in bucket order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Each(func(key K, _ *V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
