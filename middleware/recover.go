// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

// Recovered returns middleware that recovers from panics in the wrapped
// func and produces the result from fallback, which receives the call
// argument and the recovered value. A nil fallback recovers to the zero
// result.
func Recovered[R, A any](fallback func(v A, cause any) R) Middleware[R, A] {
	return func(next func(A) R) func(A) R {
		return func(v A) (out R) {
			defer func() {
				if r := recover(); r != nil {
					if fallback != nil {
						out = fallback(v, r)
					}
				}
			}()
			return next(v)
		}
	}
}
