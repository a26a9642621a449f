//go:build !unix

package objstack

// hostPageSize falls back to the common 4 KiB page size on platforms
// without a cheap syscall for the real value.
func hostPageSize() int {
	return 4096
}
