package api

import "unsafe"

// Mallocer interface for node based memory allocation. Allocators
// implementing this interface can be plugged into data-structures and
// algorithms that need scratch memory without tying them down to a
// single allocation strategy.
type Mallocer interface {
	// Allocnode allocate a chunk of `size` bytes whose address is a
	// multiple of `align`. Align shall be a power of 2.
	Allocnode(size, align int64) unsafe.Pointer

	// Freenode free a chunk allocated via Allocnode. Allocators doing
	// bulk reclamation are allowed to treat this as a no-op.
	Freenode(ptr unsafe.Pointer, size, align int64)

	// Maxnodesize maximum size, in bytes, for a single node allocation
	// that the allocator can service without growing.
	Maxnodesize() int64

	// Maxarraysize maximum size, in bytes, for a single array
	// allocation that the allocator can service without growing.
	Maxarraysize() int64

	// Stateful return true if allocator instances carry per-instance
	// identity, in which case two instances are interchangeable only
	// when they refer to the same underlying memory.
	Stateful() bool
}

// Memorier interface to plug-in a raw memory source for arenas and
// stacks. The default implementation allocates from the process heap.
type Memorier interface {
	// Allocmem allocate a block of `size` bytes from the source.
	Allocmem(size int64) unsafe.Pointer

	// Freemem free a block previously obtained via Allocmem.
	Freemem(ptr unsafe.Pointer, size int64)
}
