package objstack

import "unsafe"

func bytesAt(p unsafe.Pointer, n int) []byte {
	return unsafe.Slice((*byte)(p), n)
}

func ptrOf(p *int) unsafe.Pointer {
	return unsafe.Pointer(p)
}

func ptrOfAny[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}

func ptrSize() uintptr {
	var p unsafe.Pointer
	return unsafe.Sizeof(p)
}

func intSize() uintptr {
	return unsafe.Sizeof(int(0))
}
