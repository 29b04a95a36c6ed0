//go:build darwin || freebsd

package pybootstrap

// lcAll is the LC_ALL category value in BSD-derived locale.h.
const lcAll = 0
