package list

import (
	"reflect"

	"SimpleList/utils"
	"SimpleList/utils/errs"

	"github.com/pkg/errors"
)

// List is a doubly-linked list. The zero value is an empty list that
// allocates its nodes on the heap. Head, tail and size are tracked, so every
// operation is constant time unless noted otherwise.
//
// A List has a single owner and is not safe for concurrent use.
type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	size  int
	alloc Allocator[T]
	owner *owner
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithAllocator returns an empty list drawing its nodes from a.
func NewWithAllocator[T any](a Allocator[T]) *List[T] {
	return &List[T]{alloc: a}
}

// Copy returns a list holding a copy of every element of src, in order. The
// two lists share no nodes. O(n).
func Copy[T any](src *List[T]) *List[T] {
	l := New[T]()
	l.appendAll(src)
	return l
}

// Move returns a list adopting the nodes of src and leaves src empty. O(1).
// Iterators into src keep referring to the same nodes, now owned by the
// returned list.
func Move[T any](src *List[T]) *List[T] {
	l := &List[T]{}
	l.adopt(src)
	return l
}

// Fill returns a list of n copies of v. O(n).
func Fill[T any](n int, v T) *List[T] {
	l := New[T]()
	for i := 0; i < n; i++ {
		l.PushBack(v)
	}
	return l
}

// FillDefault returns a list of n zero values. O(n).
func FillDefault[T any](n int) *List[T] {
	var zero T
	return Fill(n, zero)
}

// Of returns a list holding items in order.
func Of[T any](items ...T) *List[T] {
	l := New[T]()
	for _, item := range items {
		l.PushBack(item)
	}
	return l
}

// FromRange returns a list holding the elements in [first, last).
func FromRange[T any](first, last Iterator[T]) *List[T] {
	l := New[T]()
	for it := first; !it.Equal(last); it = it.Next() {
		l.PushBack(it.Value())
	}
	return l
}

// FromSeq returns a list holding every element produced by next, which
// reports false once the sequence is exhausted.
func FromSeq[T any](next func() (T, bool)) *List[T] {
	l := New[T]()
	for v, ok := next(); ok; v, ok = next() {
		l.PushBack(v)
	}
	return l
}

// CopyFrom replaces the content of l with a copy of rhs. Copying a list
// onto itself is a no-op. O(n + m).
func (l *List[T]) CopyFrom(rhs *List[T]) *List[T] {
	if l == rhs {
		return l
	}
	l.rebuild(func(tmp *List[T]) {
		tmp.appendAll(rhs)
	})
	return l
}

// MoveFrom releases the nodes of l, then adopts the nodes and allocator of
// rhs, leaving rhs empty. Moving a list onto itself is a no-op. O(n) for the
// release, O(1) for the adoption.
func (l *List[T]) MoveFrom(rhs *List[T]) *List[T] {
	if l == rhs {
		return l
	}
	l.Clear()
	l.adopt(rhs)
	return l
}

// Assign replaces the content of l with items, in order. O(n + k).
func (l *List[T]) Assign(items ...T) *List[T] {
	l.rebuild(func(tmp *List[T]) {
		for _, item := range items {
			tmp.PushBack(item)
		}
	})
	return l
}

// AssignFill replaces the content of l with n copies of v. O(n + m).
func (l *List[T]) AssignFill(n int, v T) *List[T] {
	l.rebuild(func(tmp *List[T]) {
		for i := 0; i < n; i++ {
			tmp.PushBack(v)
		}
	})
	return l
}

// AssignSeq replaces the content of l with every element produced by next,
// which reports false once the sequence is exhausted.
func (l *List[T]) AssignSeq(next func() (T, bool)) *List[T] {
	l.rebuild(func(tmp *List[T]) {
		for v, ok := next(); ok; v, ok = next() {
			tmp.PushBack(v)
		}
	})
	return l
}

// AssignRange replaces the content of l with the elements in [first, last).
// The range may come from l itself.
func (l *List[T]) AssignRange(first, last Iterator[T]) *List[T] {
	l.rebuild(func(tmp *List[T]) {
		for it := first; !it.Equal(last); it = it.Next() {
			tmp.PushBack(it.Value())
		}
	})
	return l
}

// Swap exchanges the content and allocator of l and other. O(1).
func (l *List[T]) Swap(other *List[T]) {
	*l, *other = *other, *l
}

// Swap exchanges the content and allocator of a and b. O(1).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// PushFront inserts v at the front of l.
func (l *List[T]) PushFront(v T) {
	l.linkBefore(l.newNode(v), l.head)
}

// PushBack appends v to l.
func (l *List[T]) PushBack(v T) {
	l.linkBefore(l.newNode(v), nil)
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	if l.head == nil {
		return
	}
	n := l.head
	l.unlink(n)
	l.release(n)
}

// PopBack removes the last element. It does nothing on an empty list.
func (l *List[T]) PopBack() {
	if l.tail == nil {
		return
	}
	n := l.tail
	l.unlink(n)
	l.release(n)
}

// Insert inserts v immediately before pos and returns an iterator to it.
// Inserting before End appends. On an empty list v becomes the only element
// whatever pos is.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	var at *Node[T]
	if l.size > 0 {
		l.mustOwn(pos)
		at = pos.node
	}
	n := l.newNode(v)
	l.linkBefore(n, at)
	return Iterator[T]{node: n}
}

// Erase removes the node at pos and returns an iterator to the node that
// followed it. Erasing End is a no-op returning End.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.node == nil {
		return l.End()
	}
	l.mustOwn(pos)
	n := pos.node
	next := n.next
	l.unlink(n)
	l.release(n)
	return Iterator[T]{node: next}
}

// Splice moves the node at it from src into l, immediately before pos,
// without reallocating it. Iterators to the node stay valid and now refer into
// l. src may be l itself. Both lists must share the same allocator. O(1).
func (l *List[T]) Splice(pos Iterator[T], src *List[T], it Iterator[T]) {
	errs.CondPanic(it.node == nil, errs.ErrIteratorEnd)
	src.mustOwn(it)
	var at *Node[T]
	if l.size > 0 {
		l.mustOwn(pos)
		at = pos.node
	}
	errs.CondPanic(!sameAllocator(l.allocator(), src.allocator()), errs.ErrAllocatorMismatch)
	if at == it.node {
		return
	}
	n := it.node
	src.unlink(n)
	l.linkBefore(n, at)
}

// Clear releases every node of l from head to tail. O(n).
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.release(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Front returns a pointer to the first element. It panics with
// errs.ErrEmptyList when l is empty.
func (l *List[T]) Front() *T {
	if l.head == nil {
		errs.Panic(errors.Wrap(errs.ErrEmptyList, "front"))
	}
	return &l.head.data
}

// Back returns a pointer to the last element. It panics with
// errs.ErrEmptyList when l is empty.
func (l *List[T]) Back() *T {
	if l.tail == nil {
		errs.Panic(errors.Wrap(errs.ErrEmptyList, "back"))
	}
	return &l.tail.data
}

// FrontE is Front returning an error instead of panicking.
func (l *List[T]) FrontE() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errs.ErrEmptyList
	}
	return l.head.data, nil
}

// BackE is Back returning an error instead of panicking.
func (l *List[T]) BackE() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errs.ErrEmptyList
	}
	return l.tail.data, nil
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

func (l *List[T]) Len() int {
	return l.size
}

// Begin returns an iterator to the first node, End when l is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head}
}

// End returns the past-the-end iterator.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// RBegin returns an iterator to the last node. Reverse traversal steps with
// Prev until REnd.
func (l *List[T]) RBegin() Iterator[T] {
	return Iterator[T]{node: l.tail}
}

// REnd returns the iterator a reverse traversal stops at.
func (l *List[T]) REnd() Iterator[T] {
	return Iterator[T]{}
}

// Each calls fn with a pointer to every element from front to back until fn
// returns false. fn must not change the structure of l.
func (l *List[T]) Each(fn func(v *T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(&n.data) {
			return
		}
	}
}

// ToSlice returns the elements of l in order.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.data)
	}
	return s
}

func (l *List[T]) allocator() Allocator[T] {
	if l.alloc == nil {
		l.alloc = HeapAllocator[T]{}
	}
	return l.alloc
}

// sameAllocator reports whether a and b may release each other's nodes.
// Allocators of an uncomparable type cannot be told apart, so two of the same
// type are taken to be the same.
func sameAllocator[T any](a, b Allocator[T]) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return true
	}
	return a == b
}

func (l *List[T]) token() *owner {
	if l.owner == nil {
		l.owner = &owner{}
	}
	return l.owner
}

// newNode obtains a node holding v. An allocation failure panics before any
// link is touched, leaving l as it was.
func (l *List[T]) newNode(v T) *Node[T] {
	n, err := l.allocator().Allocate()
	if err != nil {
		errs.Panic(errors.Wrap(err, "allocate node"))
	}
	n.reset()
	n.data = v
	return n
}

func (l *List[T]) release(n *Node[T]) {
	n.reset()
	l.allocator().Release(n)
}

func (l *List[T]) mustOwn(pos Iterator[T]) {
	errs.CondPanic(pos.node != nil && pos.node.owner == nil, errs.ErrInvalidIterator)
	errs.CondPanic(pos.node != nil && pos.node.owner != l.owner, errs.ErrForeignIterator)
}

// linkBefore splices n in front of at, or at the tail when at is nil.
func (l *List[T]) linkBefore(n, at *Node[T]) {
	n.owner = l.token()
	if at == nil {
		n.prev = l.tail
		n.next = nil
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
	} else {
		n.prev = at.prev
		n.next = at
		if at.prev != nil {
			at.prev.next = n
		} else {
			l.head = n
		}
		at.prev = n
	}
	l.size++
}

// unlink splices n out of l, leaving it detached.
func (l *List[T]) unlink(n *Node[T]) {
	utils.AssertTrue(l.size > 0)
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next = nil
	n.prev = nil
	n.owner = nil
	l.size--
}

func (l *List[T]) appendAll(src *List[T]) {
	for n := src.head; n != nil; n = n.next {
		l.PushBack(n.data)
	}
}

// adopt takes over the storage of src in O(1) and resets src to empty.
func (l *List[T]) adopt(src *List[T]) {
	l.head = src.head
	l.tail = src.tail
	l.size = src.size
	l.alloc = src.alloc
	l.owner = src.owner
	src.head = nil
	src.tail = nil
	src.size = 0
	src.owner = nil
}

// rebuild fills a scratch list sharing the allocator of l and swaps it in
// only once fill completes, so a failing allocation leaves l untouched.
func (l *List[T]) rebuild(fill func(tmp *List[T])) {
	tmp := NewWithAllocator(l.allocator())
	defer func() {
		if r := recover(); r != nil {
			tmp.Clear()
			panic(r)
		}
	}()
	fill(tmp)
	l.Clear()
	l.adopt(tmp)
}
