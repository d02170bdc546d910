// Package list implements a generic doubly-linked list with iterators that
// stay valid across mutations of other nodes, and a pluggable node allocator.
package list

// owner identifies the list a node is linked into. It is handed over with the
// storage on move and swap, and cleared on the node when it is unlinked.
type owner struct {
	_ int
}

// Node is the unit of storage of a List. Its links are only ever rewired by
// the List that owns it.
type Node[T any] struct {
	data  T
	next  *Node[T]
	prev  *Node[T]
	owner *owner
}

func (n *Node[T]) reset() {
	var zero T
	n.data = zero
	n.next = nil
	n.prev = nil
	n.owner = nil
}
