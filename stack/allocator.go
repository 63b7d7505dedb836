package stack

import "unsafe"

import "github.com/bnclabs/gomemstack/api"

// Allocator adapts a Stack to the api.Mallocer{} interface, so that
// the stack can be plugged into allocator-agnostic consumers. The
// adapter borrows the stack, it does not own it, hence the stack shall
// outlive every adapter referring to it. Adapters are stateful: they
// copy and compare as the identity of the referred stack, two adapters
// are interchangeable only when they refer to the same stack.
type Allocator struct {
	stack *Stack
}

var _ api.Mallocer = Allocator{}

// NewAllocator create an adapter over stack.
func NewAllocator(stack *Stack) Allocator {
	if stack == nil {
		panicerr("nil stack")
	}
	return Allocator{stack: stack}
}

// Allocnode implement api.Mallocer{} interface, forwards to
// Stack.Alloc.
func (alc Allocator) Allocnode(size, align int64) unsafe.Pointer {
	return alc.stack.Alloc(size, align)
}

// Freenode implement api.Mallocer{} interface. Single chunks cannot
// be freed from a stack, reclamation is bulk-only via Stack.Unwind,
// hence a no-op.
func (alc Allocator) Freenode(ptr unsafe.Pointer, size, align int64) {
}

// Maxnodesize implement api.Mallocer{} interface. Reports
// Nextcapacity() as a conservative ceiling for a single allocation
// that would not force growth. Not a hard cap, larger requests may
// still succeed by growing the chain.
func (alc Allocator) Maxnodesize() int64 {
	return alc.stack.Nextcapacity()
}

// Maxarraysize implement api.Mallocer{} interface, same ceiling as
// Maxnodesize.
func (alc Allocator) Maxarraysize() int64 {
	return alc.stack.Nextcapacity()
}

// Stateful implement api.Mallocer{} interface, always true for stack
// adapters.
func (alc Allocator) Stateful() bool {
	return true
}

// Memory return the stack this adapter refers to.
func (alc Allocator) Memory() *Stack {
	return alc.stack
}
