//go:build debug
// +build debug

package stack

import "reflect"
import "unsafe"

// poison pattern stamped over freshly acquired blocks, helps catch
// reads of unwound or uninitialized memory.
var poisonblkinit = make([]byte, 1024)

func init() {
	for i := 0; i < len(poisonblkinit); i++ {
		poisonblkinit[i] = 0xff
	}
}

func initblock(block uintptr, size int64) {
	var dst []byte
	initsz := len(poisonblkinit)
	sl := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	sl.Data, sl.Len = block, initsz
	for i := int64(0); i < size/int64(initsz); i++ {
		copy(dst, poisonblkinit)
		sl.Data = (uintptr)(uint64(sl.Data) + uint64(initsz))
	}
	if sl.Len = int(size) % len(poisonblkinit); sl.Len > 0 {
		copy(dst, poisonblkinit)
	}
}

func assertf(cond bool, fmsg string, args ...interface{}) {
	if !cond {
		panicerr(fmsg, args...)
	}
}
