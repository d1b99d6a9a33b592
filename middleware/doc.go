// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package middleware provides composable middleware for unary funcs
// before they are stored in containers.
//
// A [Middleware] wraps a func(A) R with cross-cutting logic. Middleware
// compose with [Chain] and are applied right-to-left: the first
// middleware in the list is the outermost wrapper.
//
//	h := middleware.Chain(
//		middleware.Logged[int, int](logger, "double"),
//		middleware.Recovered[int, int](nil),
//	)(double)
//	f := kall.New(h)
//
// or, in one step, [Wrap]:
//
//	f := middleware.Wrap(double,
//		middleware.Logged[int, int](logger, "double"),
//		middleware.Recovered[int, int](nil),
//	)
//
// # Built-in Middleware
//
//   - [Logged] — logs call name, outcome, and duration at debug level
//   - [Recovered] — catches panics and produces a fallback result
//   - [Metrics] — records per-call duration and count via OpenTelemetry
//   - [Traced] — wraps calls whose argument is a context.Context in an
//     OpenTelemetry span
//
// # Writing Custom Middleware
//
//	func Capped[R, A any](limit int) middleware.Middleware[R, A] {
//		return func(next func(A) R) func(A) R {
//			n := 0
//			return func(v A) R {
//				if n++; n > limit {
//					panic("call limit exceeded")
//				}
//				return next(v)
//			}
//		}
//	}
package middleware
