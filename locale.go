//go:build darwin || freebsd || linux

package pybootstrap

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// setlocale is bound from the process image twice, once per call shape:
// a query form that can pass NULL to read the current locale, and a set
// form that takes a Go string. Both registrations target the same libc
// symbol.
var (
	setlocaleQuery func(category int32, locale uintptr) uintptr
	setlocaleSet   func(category int32, locale string) uintptr

	setlocaleOnce sync.Once
	setlocaleErr  error
)

func bindSetlocale() error {
	setlocaleOnce.Do(func() {
		addr, err := purego.Dlsym(purego.RTLD_DEFAULT, "setlocale")
		if err != nil {
			setlocaleErr = fmt.Errorf("dlsym(\"setlocale\") failed: %v", err)
			return
		}
		purego.RegisterFunc(&setlocaleQuery, addr)
		purego.RegisterFunc(&setlocaleSet, addr)
	})
	return setlocaleErr
}

// pushNativeLocale switches LC_ALL to the process's native environment
// locale, which the runtime's locale-aware decoder depends on, and
// returns a function restoring the previous locale. The previous value
// is copied out of libc's static buffer before switching, the
// equivalent of the strdup a C caller would do.
func pushNativeLocale() (restore func(), err error) {
	if err := bindSetlocale(); err != nil {
		return nil, err
	}
	prev := goString(setlocaleQuery(lcAll, 0))
	setlocaleSet(lcAll, "")
	return func() {
		setlocaleSet(lcAll, prev)
	}, nil
}

// goString copies a NUL-terminated C string into a Go string. Returns
// "" for a NULL pointer.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
