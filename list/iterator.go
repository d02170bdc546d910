package list

import (
	"SimpleList/utils/errs"
)

// Iterator is a non-owning cursor to a node of a List, or to the position
// past the end when it holds no node. Iterators are compared by node
// identity. An iterator is invalidated when its node is erased; using it
// afterwards panics with errs.ErrInvalidIterator. Dereferencing or stepping
// the end iterator panics with errs.ErrIteratorEnd.
type Iterator[T any] struct {
	node *Node[T]
}

func (it Iterator[T]) check() {
	errs.CondPanic(it.node == nil, errs.ErrIteratorEnd)
	errs.CondPanic(it.node.owner == nil, errs.ErrInvalidIterator)
}

// Equal reports whether both iterators refer to the same node, or are both
// past the end.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// IsEnd reports whether it is the past-the-end iterator.
func (it Iterator[T]) IsEnd() bool {
	return it.node == nil
}

// Valid reports whether it refers to a node still linked into a list.
func (it Iterator[T]) Valid() bool {
	return it.node != nil && it.node.owner != nil
}

// Value returns a copy of the element it refers to.
func (it Iterator[T]) Value() T {
	it.check()
	return it.node.data
}

// Ref returns a pointer to the element for in-place access. The pointer is
// only meaningful while the node stays linked.
func (it Iterator[T]) Ref() *T {
	it.check()
	return &it.node.data
}

// Set replaces the element it refers to.
func (it Iterator[T]) Set(v T) {
	it.check()
	it.node.data = v
}

// Next steps forward. Stepping from the last node yields the end iterator.
func (it Iterator[T]) Next() Iterator[T] {
	it.check()
	return Iterator[T]{node: it.node.next}
}

// Prev steps backward. Stepping from the first node yields the end iterator,
// which is also where a reverse traversal from RBegin stops.
func (it Iterator[T]) Prev() Iterator[T] {
	it.check()
	return Iterator[T]{node: it.node.prev}
}

// Advance steps n nodes forward, or backward when n is negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}
