// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Panic helpers for the two error kinds the package raises: the
// empty-invocation error (badCall) and the construction-time
// configuration errors (the rest). Kept out of line so the callers'
// fast paths stay inlinable.

//go:noinline
func badCall() {
	panic("kall: call on empty function container")
}

//go:noinline
func badCap() {
	panic("kall: insufficient inline capacity")
}

//go:noinline
func badShape() {
	panic("kall: callable requires dynamic placement")
}

//go:noinline
func badNested() {
	panic("kall: callable is already a function container")
}

//go:noinline
func badOption() {
	panic("kall: nonpositive inline capacity")
}
