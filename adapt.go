// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Shape adapters for the unary signature family.
//
// Containers hold callables of one argument and one result. [Unit]
// stands in for "no argument" and "no result", and the adapters below
// lift the remaining func shapes into func(A) R form. Adapters preserve
// nil: lifting a nil func yields a nil func, so a lifted nil still
// constructs an empty container.

// Unit is the empty argument and result type.
type Unit struct{}

// Thunk lifts a no-argument func into the unary family.
func Thunk[R any](fn func() R) func(Unit) R {
	if fn == nil {
		return nil
	}
	return func(Unit) R {
		return fn()
	}
}

// Proc lifts a no-result func into the unary family.
func Proc[A any](fn func(A)) func(A) Unit {
	if fn == nil {
		return nil
	}
	return func(v A) Unit {
		fn(v)
		return Unit{}
	}
}

// Task lifts a no-argument, no-result func into the unary family.
func Task(fn func()) func(Unit) Unit {
	if fn == nil {
		return nil
	}
	return func(Unit) Unit {
		fn()
		return Unit{}
	}
}

// Const returns a func that ignores its argument and returns v.
func Const[R, A any](v R) func(A) R {
	return func(A) R {
		return v
	}
}
