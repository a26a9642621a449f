//go:build unix

package objstack

import "golang.org/x/sys/unix"

// hostPageSize reports the real host page size, used to pick the default
// chunk size (see defaultChunkSize).
func hostPageSize() int {
	return unix.Getpagesize()
}
