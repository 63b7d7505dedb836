// Functions and methods are not thread safe.

package stack

//#include <stdlib.h>
import "C"

import "unsafe"

import "github.com/bnclabs/gomemstack/api"

// heapmemory sources blocks from the process heap.
type heapmemory struct{}

// Heapmemory return the default memory source, drawing blocks from
// the process heap. Heap exhaustion panics with ErrorOutofMemory.
func Heapmemory() api.Memorier {
	return heapmemory{}
}

// Allocmem implement api.Memorier{} interface.
func (heapmemory) Allocmem(size int64) unsafe.Pointer {
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		panic(ErrorOutofMemory)
	}
	if (uintptr(ptr) & uintptr(Alignment-1)) != 0 {
		panicerr("allocated block is not %v byte aligned", Alignment)
	}
	return ptr
}

// Freemem implement api.Memorier{} interface.
func (heapmemory) Freemem(ptr unsafe.Pointer, size int64) {
	C.free(ptr)
}
