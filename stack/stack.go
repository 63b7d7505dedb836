// Functions and methods are not thread safe.

package stack

import "fmt"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gomemstack/api"

// Stack defines a stack-discipline memory allocator. Allocation bumps
// a cursor within the active block, falling back to the block chain
// for a fresh block when the active block is exhausted. Deallocation
// is bulk-only: capture a Marker with Top and roll back with Unwind.
type Stack struct {
	chain    *blockchain
	cursor   uintptr // next free byte in the active block
	blockend uintptr // one past the last byte of the active block

	// configuration
	blocksize int64 // size of the initial block
	logprefix string
}

// Marker is an immutable snapshot of a stack's position. A marker is
// valid only for the stack that produced it, and only while the block
// it references is still part of the chain.
type Marker struct {
	index    int64
	cursor   uintptr
	blockend uintptr
}

// NewStack create a new memory stack whose initial block is
// `blocksize` bytes, drawn from `memory`. Pass nil memory to draw
// from the process heap. Pass nil setts to use Defaultsettings().
func NewStack(blocksize int64, memory api.Memorier, setts s.Settings) *Stack {
	if blocksize < Minblocksize {
		panicerr("blocksize %v less than minimum %v", blocksize, Minblocksize)
	} else if (blocksize % Alignment) != 0 {
		panicerr("blocksize %v is not a multiple of %v", blocksize, Alignment)
	}
	if memory == nil {
		memory = Heapmemory()
	}
	setts = Defaultsettings().Mixin(setts)
	growth := setts.Float64("growthfactor")
	maxblock := setts.Int64("maxblocksize")
	if growth <= 1.0 {
		panicerr("growthfactor %v should be greater than 1", growth)
	} else if (maxblock % Alignment) != 0 {
		panicerr("maxblocksize %v is not a multiple of %v", maxblock, Alignment)
	}
	stack := &Stack{
		chain:     newblockchain(blocksize, memory, growth, maxblock),
		blocksize: blocksize,
		logprefix: fmt.Sprintf("STAK [%v]", humanize.Bytes(uint64(blocksize))),
	}
	stack.switchblock(stack.chain.allocate(blocksize))
	infof("%v started ...\n", stack.logprefix)
	return stack
}

//---- operations

// Alloc allocate `size` bytes whose address is a multiple of `align`.
// Align shall be a power of 2. If the active block cannot hold the
// chunk a fresh block is acquired from the chain; bytes left over in
// the previous block stay unused until an unwind crosses back into it.
func (stack *Stack) Alloc(size, align int64) unsafe.Pointer {
	if stack.chain == nil {
		panicerr("stack released")
	} else if size <= 0 {
		panicerr("Alloc size %v should be positive", size)
	} else if !powerof2(align) {
		panicerr("alignment %v is not a power of 2", align)
	}
	offset := alignoffset(stack.cursor, align)
	if offset+uintptr(size) > stack.blockend-stack.cursor {
		// worst case padding for the fresh block is align-1 bytes.
		block := stack.chain.allocate(size + align - 1)
		stack.switchblock(block)
		debugf("%v grown to %v blocks, next block %v\n",
			stack.logprefix, stack.chain.size(),
			humanize.Bytes(uint64(stack.chain.nextblocksize())))
		offset = alignoffset(stack.cursor, align)
		assertf(offset+uintptr(size) <= stack.blockend-stack.cursor,
			"fresh block of %v cannot hold %v bytes", block.size, size)
	}
	stack.cursor += offset
	ptr := stack.cursor
	stack.cursor += uintptr(size)
	return unsafe.Pointer(ptr)
}

// Top return a marker to the current top of the stack. O(1), no side
// effects.
func (stack *Stack) Top() Marker {
	if stack.chain == nil {
		panicerr("stack released")
	}
	return Marker{
		index:    stack.chain.size() - 1,
		cursor:   stack.cursor,
		blockend: stack.blockend,
	}
}

// Unwind roll the stack back to `m`, releasing every block acquired
// after the marker was taken, most recent first. Everything allocated
// after the marker becomes invalid, no finalizers are run. The marker
// shall have come from this same stack and shall reference a block
// still present in the chain; a foreign, stale or future marker is
// undefined behaviour, checked only in builds with the debug tag.
func (stack *Stack) Unwind(m Marker) {
	if stack.chain == nil {
		panicerr("stack released")
	}
	assertf(m.index < stack.chain.size(),
		"marker references a released block")
	diff := stack.chain.size() - m.index - 1
	assertf(diff > 0 || m.cursor <= stack.cursor,
		"marker is ahead of current position")
	for i := int64(0); i < diff; i++ {
		stack.chain.deallocate()
	}
	stack.cursor, stack.blockend = m.cursor, m.blockend
}

// Release free the entire block chain back to the memory source.
// Subsequent operations on this stack shall panic, and markers
// captured from it shall never be used again.
func (stack *Stack) Release() {
	if stack.chain == nil {
		panicerr("stack released")
	}
	stack.chain.release()
	stack.chain = nil
	infof("%v destroyed\n", stack.logprefix)
}

//---- statistics

// Capacity return the bytes remaining in the active block, obtainable
// without acquiring a fresh block.
func (stack *Stack) Capacity() int64 {
	if stack.chain == nil {
		panicerr("stack released")
	}
	return int64(stack.blockend - stack.cursor)
}

// Nextcapacity size of the block the chain would supply once
// Capacity() is exhausted. Pure query, no side effects.
func (stack *Stack) Nextcapacity() int64 {
	if stack.chain == nil {
		panicerr("stack released")
	}
	return stack.chain.nextblocksize()
}

// Blocks return the number of blocks currently held by the stack.
func (stack *Stack) Blocks() int64 {
	if stack.chain == nil {
		panicerr("stack released")
	}
	return stack.chain.size()
}

// Info return memory accounting for this stack. `heap` is total bytes
// acquired from the memory source, `alloc` is bytes consumed by
// allocations and padding, `overhead` is the cost of book-keeping.
func (stack *Stack) Info() (heap, alloc, overhead int64) {
	if stack.chain == nil {
		panicerr("stack released")
	}
	heap = stack.chain.heapmem()
	alloc = heap - stack.Capacity()
	self := int64(unsafe.Sizeof(*stack)) + int64(unsafe.Sizeof(*stack.chain))
	slicesz := int64(cap(stack.chain.blocks)) * int64(unsafe.Sizeof(memblock{}))
	return heap, alloc, self + slicesz
}

//---- local functions

func (stack *Stack) switchblock(block memblock) {
	stack.cursor = uintptr(block.base)
	stack.blockend = stack.cursor + uintptr(block.size)
}
