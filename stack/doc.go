// Package stack supplies a stack-discipline memory allocator, with a
// limited scope:
//
//  * Types and Functions exported by this package are not thread safe.
//  * Allocation is a pointer bump into the active block, falling back
//    to a freshly acquired block when the active block is exhausted.
//  * Individual chunks cannot be freed. Memory is reclaimed in bulk,
//    by unwinding the stack to a previously captured marker.
//  * Blocks are acquired from a pluggable memory source, by default
//    the process heap, and sized by a geometric growth policy.
//  * Chunks allocated by this package honour any power of 2 alignment
//    requested by the caller.
//
// Construct a stack with an initial block size, Alloc chunks off it,
// capture the current position with Top and roll back everything
// allocated since with Unwind:
//
//	mstack := NewStack(1024, nil, nil)
//	defer mstack.Release()
//
//	marker := mstack.Top()
//	ptr := mstack.Alloc(96, 8)
//	// ... use ptr ...
//	mstack.Unwind(marker)
//
// Unwinding runs no finalizers. Objects living in the unwound region
// are the caller's responsibility to tear down before calling Unwind.
package stack
