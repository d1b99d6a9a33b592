// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

// Middleware wraps a unary func with cross-cutting logic. A middleware
// receives the next func in the chain and returns the wrapped func; it
// must call next to continue the chain unless intentionally
// short-circuiting.
type Middleware[R, A any] func(next func(A) R) func(A) R

// Chain composes multiple middleware into one. Middleware are applied
// right-to-left: the first middleware in the list is the outermost
// wrapper.
//
// Example: Chain(logged, recovered)(h) executes as:
//
//	logged → recovered → h
func Chain[R, A any](mws ...Middleware[R, A]) Middleware[R, A] {
	return func(next func(A) R) func(A) R {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
