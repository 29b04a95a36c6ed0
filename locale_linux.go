//go:build linux

package pybootstrap

// lcAll is the LC_ALL category value in glibc, musl, and bionic locale.h.
const lcAll = 6
