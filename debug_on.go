//go:build objstack_debug

package objstack

import "fmt"

// debugAssert panics with a formatted message if cond is false. It compiles
// to nothing (see debug_off.go) unless built with -tags objstack_debug,
// matching the original's debug-only assertion style rather than paying for
// these checks on every build.
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic("objstack: assertion failed: " + fmt.Sprintf(format, args...))
	}
}

const debugBuild = true
