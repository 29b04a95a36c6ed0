//go:build darwin || freebsd || linux

package pybootstrap

import (
	"fmt"
	"unsafe"
)

// ptrSize is the width of a pointer slot in the runtime-allocated
// argument vectors.
const ptrSize = unsafe.Sizeof(uintptr(0))

// argVectors holds the two runtime-allocated argument arrays handed to
// the interpreter's main entry point. Primary is the working copy the
// entry point consumes and may mutate or retain; Shadow mirrors the
// original element pointers and is the only copy trusted at teardown.
// Both are length Count+1 with a NUL terminator slot.
type argVectors struct {
	Primary uintptr
	Shadow  uintptr
	Count   int
}

// marshalArgs decodes the host argument vector into two parallel
// runtime-native vectors using the runtime's own decoder and allocator.
// The caller is responsible for the locale scope around the call.
//
// On any decode failure the error names the 1-based ordinal of the
// failing argument and everything allocated so far is released through
// the runtime's deallocator, so no partial marshaling escapes.
func marshalArgs(ep *EntryPoints, args []string) (argVectors, error) {
	n := len(args)
	size := ptrSize * uintptr(n+1)

	vecs := argVectors{Count: n}
	vecs.Primary = ep.RawMalloc(size)
	vecs.Shadow = ep.RawMalloc(size)
	if vecs.Primary == 0 || vecs.Shadow == 0 {
		if vecs.Primary != 0 {
			ep.RawFree(vecs.Primary)
		}
		if vecs.Shadow != 0 {
			ep.RawFree(vecs.Shadow)
		}
		return argVectors{}, fmt.Errorf("unable to allocate %d argument slots", n+1)
	}

	for i, arg := range args {
		w := ep.DecodeLocale(arg, 0)
		if w == 0 {
			for j := 0; j < i; j++ {
				ep.RawFree(vectorSlot(vecs.Shadow, j))
			}
			ep.RawFree(vecs.Primary)
			ep.RawFree(vecs.Shadow)
			return argVectors{}, fmt.Errorf("unable to decode the command line argument #%d", i+1)
		}
		setVectorSlot(vecs.Primary, i, w)
		setVectorSlot(vecs.Shadow, i, w)
	}
	setVectorSlot(vecs.Primary, n, 0)
	setVectorSlot(vecs.Shadow, n, 0)

	return vecs, nil
}

// release frees every decoded string through the runtime's deallocator
// and then the two containers themselves. Elements are read from the
// shadow vector only; the entry point may have clobbered the primary.
func (v argVectors) release(ep *EntryPoints) {
	for i := 0; i < v.Count; i++ {
		ep.RawFree(vectorSlot(v.Shadow, i))
	}
	ep.RawFree(v.Primary)
	ep.RawFree(v.Shadow)
}

// vectorSlot reads element i of a runtime-allocated pointer vector.
func vectorSlot(vec uintptr, i int) uintptr {
	return *(*uintptr)(unsafe.Pointer(vec + uintptr(i)*ptrSize))
}

// setVectorSlot writes element i of a runtime-allocated pointer vector.
func setVectorSlot(vec uintptr, i int, p uintptr) {
	*(*uintptr)(unsafe.Pointer(vec + uintptr(i)*ptrSize)) = p
}
