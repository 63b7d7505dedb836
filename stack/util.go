package stack

import "fmt"
import "errors"

// ErrorOutofMemory raised as panic when the raw memory source cannot
// supply a block.
var ErrorOutofMemory = errors.New("stack.outofmemory")

// alignoffset padding needed to bring cursor up to a multiple of
// align. Align shall be a power of 2.
func alignoffset(cursor uintptr, align int64) uintptr {
	if misaligned := cursor & uintptr(align-1); misaligned != 0 {
		return uintptr(align) - misaligned
	}
	return 0
}

func powerof2(align int64) bool {
	return align > 0 && (align&(align-1)) == 0
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
