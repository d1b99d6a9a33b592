// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

import (
	"math/bits"
	"reflect"
)

// The storage cell is the container's buffer. Every placement and
// relocation operation in the package happens through a cell and its
// manage handle; no other code touches stored callables directly.
//
// Go's interface word is the inline slot: a pointer-shaped value (func,
// pointer, map, chan) is held directly in the word — local placement,
// no container-side allocation. Any other concrete type lives in exactly
// one heap box whose pointer the word holds — dynamic placement. The
// boxed flag records which of the two the installer chose.
type cell struct {
	fn     any
	manage manageFn
	boxed  bool
}

// wordSize is the size of the cell's inline slot in bytes.
const wordSize = bits.UintSize / 8

// pointerShaped reports whether values of kind k occupy a single pointer
// word and therefore qualify for local placement. Slices, strings and
// interfaces are multi-word headers; they box like any other value type.
func pointerShaped(k reflect.Kind) bool {
	switch k {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// manageWord serves local placement: the callable is the cell word.
// Relocation is a word transfer and duplication is a word copy, so every
// operation is trivially error-free.
func manageWord(op manageOp, src, dst *cell) {
	switch op {
	case opDestruct:
		src.fn = nil
	case opMove:
		dst.fn = src.fn
		src.fn = nil
	case opCopy:
		dst.fn = src.fn
	}
}

// manageBoxed serves dynamic placement of a value functor of concrete
// type F. Moving transfers the box pointer without reallocating;
// duplication re-boxes the value so the copy is independent of the
// source box.
func manageBoxed[F any](op manageOp, src, dst *cell) {
	switch op {
	case opDestruct:
		src.fn = nil
	case opMove:
		dst.fn = src.fn
		src.fn = nil
	case opCopy:
		dst.fn = src.fn.(F)
	}
}

// manageOwned serves dynamic placement of container-owned state: the
// cell word holds *F and the container is the sole owner of the pointee.
// Duplication makes a typed copy of the pointee into a fresh box, which
// is what gives [Own] containers value semantics under Clone.
func manageOwned[F any](op manageOp, src, dst *cell) {
	switch op {
	case opDestruct:
		src.fn = nil
	case opMove:
		dst.fn = src.fn
		src.fn = nil
	case opCopy:
		p := src.fn.(*F)
		q := *p
		dst.fn = &q
	}
}
