package list

import (
	"SimpleList/utils"
	"SimpleList/utils/errs"

	"github.com/pkg/errors"
)

// Allocator obtains storage for one node and takes it back. A List never
// assumes more than that. Release receives a node that is already unlinked
// and whose element has been zeroed.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Release(n *Node[T])
}

// HeapAllocator allocates every node on the heap and leaves released nodes to
// the garbage collector. It is the allocator of a zero List.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Allocate() (*Node[T], error) {
	return new(Node[T]), nil
}

func (HeapAllocator[T]) Release(*Node[T]) {}

// Arena carves nodes out of fixed size blocks and recycles released nodes
// through a free list. An Arena may back several lists at once but, like the
// lists, it is not safe for concurrent use.
type Arena[T any] struct {
	blocks    [][]Node[T]
	offset    int // next unused slot of the last block
	free      *Node[T]
	blockSize int
	maxNodes  int // 0 means unbounded

	allocated int
	inUse     int
}

// NewArena returns an arena growing by blockSize nodes. When maxNodes is
// positive, Allocate fails with errs.ErrNoSpace once that many nodes are live.
func NewArena[T any](blockSize, maxNodes int) *Arena[T] {
	if blockSize < 1 {
		blockSize = 1
	}
	return &Arena[T]{
		blockSize: blockSize,
		maxNodes:  maxNodes,
	}
}

// NewArenaWithOptions sizes the arena from opt.
func NewArenaWithOptions[T any](opt *utils.Options) *Arena[T] {
	return NewArena[T](opt.ArenaBlockSize, opt.ArenaMaxNodes)
}

func (a *Arena[T]) Allocate() (*Node[T], error) {
	if a.free != nil {
		n := a.free
		a.free = n.next
		n.next = nil
		a.inUse++
		return n, nil
	}
	if a.maxNodes > 0 && a.allocated >= a.maxNodes {
		return nil, errors.Wrapf(errs.ErrNoSpace, "arena holds %d nodes", a.allocated)
	}
	if len(a.blocks) == 0 || a.offset == a.blockSize {
		a.blocks = append(a.blocks, make([]Node[T], a.blockSize))
		a.offset = 0
	}
	block := a.blocks[len(a.blocks)-1]
	n := &block[a.offset]
	a.offset++
	a.allocated++
	a.inUse++
	return n, nil
}

func (a *Arena[T]) Release(n *Node[T]) {
	utils.AssertTrue(a.inUse > 0)
	n.reset()
	n.next = a.free
	a.free = n
	a.inUse--
}

// Allocated returns the number of node slots handed out from blocks so far.
func (a *Arena[T]) Allocated() int {
	return a.allocated
}

// InUse returns the number of nodes allocated and not yet released.
func (a *Arena[T]) InUse() int {
	return a.inUse
}
