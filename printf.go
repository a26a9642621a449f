package objstack

import "fmt"

// printfScratchSize bounds how many formatted bytes Printf will append,
// mirroring the original obstack_printf's fixed 1024-byte stack buffer.
// Go has no separate obstack_vprintf entry point: fmt's variadic args
// already cover both the plain and va_list-forwarding use cases the
// original needed two functions for.
const printfScratchSize = 1024

// Printf formats according to format and appends the result to the
// growing object via Grow. It returns the length fmt.Sprintf reports for
// the full, untruncated output — matching vsnprintf's contract, which the
// original relies on: the return value reflects what would have been
// written even when the append itself is truncated to printfScratchSize.
func (s *Stack) Printf(format string, args ...any) int {
	full := fmt.Sprintf(format, args...)
	appended := full
	if len(appended) > printfScratchSize {
		appended = appended[:printfScratchSize]
	}
	s.Grow([]byte(appended))
	return len(full)
}
