//go:build !debug
// +build !debug

package stack

// production builds leave fresh blocks untouched and skip contract
// checks on the unwind path.

func initblock(block uintptr, size int64) {
}

func assertf(cond bool, fmsg string, args ...interface{}) {
}
