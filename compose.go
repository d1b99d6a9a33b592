// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Composition helpers over unary funcs. These compose plain funcs, not
// containers: compose first, then store the result through a
// constructor door, so the container dispatches once per call.

// Compose returns g after f, in mathematical order: Compose(g, f)(v) is
// g(f(v)).
//
// Allocation note: each composition allocates one closure; composing n
// funcs with nested Compose calls allocates n-1.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(v A) C {
		return g(f(v))
	}
}

// AndThen returns f then g, in pipeline order: AndThen(f, g)(v) is
// g(f(v)). It is Compose with the arguments flipped, kept separate
// because pipelines read left to right.
func AndThen[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(v A) C {
		return g(f(v))
	}
}
