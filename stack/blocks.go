// Functions and methods are not thread safe.

package stack

import "unsafe"

import "github.com/bnclabs/gomemstack/api"

// memblock is one contiguous region obtained from the memory source.
type memblock struct {
	base unsafe.Pointer
	size int64
}

// blockchain manages an ordered chain of memory blocks. Blocks are
// acquired on demand, sized by a geometric growth policy, and released
// in strict LIFO order, most recently acquired first.
type blockchain struct {
	memory api.Memorier
	blocks []memblock

	// growth policy
	nextsize int64   // size of the block the next allocate will produce
	growth   float64 // multiplier applied after every acquisition
	maxblock int64   // ceiling on a single block's size
}

func newblockchain(
	blocksize int64, memory api.Memorier,
	growth float64, maxblock int64) *blockchain {

	if blocksize > maxblock {
		panicerr("blocksize %v exceeds maxblocksize %v", blocksize, maxblock)
	}
	return &blockchain{
		memory:   memory,
		blocks:   make([]memblock, 0, 8),
		nextsize: blocksize,
		growth:   growth,
		maxblock: maxblock,
	}
}

// allocate acquire a new block and append it to the chain. The block
// is guaranteed to hold atleast `need` bytes; a need that no block
// under maxblock can hold is a fatal precondition violation.
func (chain *blockchain) allocate(need int64) memblock {
	size := chain.nextsize
	for size < need {
		if size == chain.maxblock {
			panicerr("need %v exceeds maxblocksize %v", need, chain.maxblock)
		}
		size = chain.grownext(size)
	}
	base := chain.memory.Allocmem(size)
	initblock(uintptr(base), size)
	block := memblock{base: base, size: size}
	chain.blocks = append(chain.blocks, block)
	chain.nextsize = chain.grownext(size)
	return block
}

// deallocate release the most recently acquired block back to the
// memory source.
func (chain *blockchain) deallocate() {
	if len(chain.blocks) == 0 {
		panicerr("deallocate on empty chain")
	}
	block := chain.blocks[len(chain.blocks)-1]
	chain.blocks = chain.blocks[:len(chain.blocks)-1]
	chain.memory.Freemem(block.base, block.size)
}

// size return the number of blocks currently in the chain.
func (chain *blockchain) size() int64 {
	return int64(len(chain.blocks))
}

// nextblocksize size of the block the next allocate call would
// produce, a pure query with no side effects. Unwinding the owning
// stack does not shrink it, the policy remembers its growth.
func (chain *blockchain) nextblocksize() int64 {
	return chain.nextsize
}

// heapmem total bytes currently acquired from the memory source.
func (chain *blockchain) heapmem() int64 {
	heap := int64(0)
	for _, block := range chain.blocks {
		heap += block.size
	}
	return heap
}

// release free every block in the chain, most recent first.
func (chain *blockchain) release() {
	for i := len(chain.blocks) - 1; i >= 0; i-- {
		chain.memory.Freemem(chain.blocks[i].base, chain.blocks[i].size)
	}
	chain.blocks = nil
}

func (chain *blockchain) grownext(size int64) int64 {
	grown := int64(float64(size) * chain.growth)
	if grown <= size { // guarantee progress for factors close to 1
		grown = size + Minblocksize
	}
	if grown > chain.maxblock {
		grown = chain.maxblock
	}
	return grown
}
