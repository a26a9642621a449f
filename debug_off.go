//go:build !objstack_debug

package objstack

// debugAssert is a no-op outside the objstack_debug build tag; args are
// never evaluated for formatting cost since this function itself is free to
// inline away.
func debugAssert(cond bool, format string, args ...any) {}

const debugBuild = false
