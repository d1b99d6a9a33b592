// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kall provides generic, type-erased callable containers in Go.
//
// A container is a small concrete value type that holds "anything
// invocable with a given signature" — a named func, a closure, a method
// value, a stateful functor — so callers can store, pass and invoke
// heterogeneous callables without exposing the concrete callable type.
// All type-specific knowledge lives in two handles captured at
// construction: an invoke handle that calls the stored callable and a
// manage handle that destroys, relocates or duplicates it. Every later
// operation goes through those handles, never through the concrete type.
//
// # Signature Family
//
// Containers are unary — one argument type, one result type, result
// first: Func[R, A] holds a func(A) R. [Unit] and the shape adapters
// lift the other arities:
//
//   - [Thunk]: func() R → func(Unit) R
//   - [Proc]: func(A) → func(A) Unit
//   - [Task]: func() → func(Unit) Unit
//   - [Const]: a constant result as a func(A) R
//
// Multi-argument callables pass a struct or close over their arguments.
//
// # Variants
//
// One policy-unaware engine, four public shapes:
//
//   - [Func]: copyable and movable, heap fallback allowed — the default
//   - [Unique]: move-only single ownership
//   - [Once]: consume-on-call; invoking empties the container
//   - [Inline]: strictly inline, no heap fallback, non-relocatable
//     public surface
//
// The zero value of every variant is a valid empty container. Calling
// an empty container panics; TryCall is the non-panicking probe on all
// variants. [Unique], [Once] and [Inline] resist duplication by
// assignment (go vet copylocks); [Func] assignment copies the handle —
// use [Func.Clone] for an independent copy.
//
// # Placement
//
// Go's interface word is the inline buffer. A pointer-shaped callable
// (func value, pointer functor, map, chan) is held directly in the
// cell's word: local placement, no container-side allocation. Any other
// concrete type lives in exactly one heap box: dynamic placement. The
// decision is made at construction from the constructor's static type
// and the configured capacity ([WithCap], default [DefaultCap]) and is
// fixed for the lifetime of that stored value. [Inline] containers
// reject dynamic placement at construction with a distinct panic per
// cause; the other variants fall back to the box silently.
//
// # Constructor Doors
//
//   - [New], [NewUnique], [NewOnce], [NewInline]: from a func value
//   - [NewCallable], [NewUniqueCallable], [NewOnceCallable],
//     [NewInlineCallable]: from a [Callable], stored as given — pointer
//     functors alias the caller's state, value functors box
//   - [Own]: from a functor value cloned into a container-owned box;
//     clones of the container re-clone the state, giving full value
//     semantics (Func only, where Clone makes ownership observable)
//
// Nil funcs and nil callables construct empty containers. A container
// is never accepted as a callable: the doors reject nested wrapping at
// construction.
//
// # Lifecycle
//
//   - Call, TryCall: invoke ([Once] consumes)
//   - Valid: engaged or empty; the empty-comparison surface
//   - Set, Reset: reassign or drop the stored callable ([Inline] adds
//     SetCallable, the functor door on the variant that cannot be
//     moved into)
//   - Clone ([Func]): independent duplicate
//   - MoveTo, Swap (movable variants): relocate without invoking
//   - Cap, Inlined: capacity and placement introspection
//
// Containers never synchronize internally: one instance is used
// sequentially by contract, distinct instances are fully independent.
// Every operation completes before returning. An engaged container owns
// at most one heap allocation, released exactly once.
//
// # Composition
//
//   - [Compose]: g after f, mathematical order
//   - [AndThen]: f then g, pipeline order
//
// # Subpackages
//
// Package registry keeps named, sharded collections of erased
// containers; package middleware wraps unary funcs with cross-cutting
// chains (recovery, logging, metrics, tracing) before they are stored.
//
// # Example
//
//	n := 0
//	f := kall.New[int, int](func(d int) int {
//		n += d
//		return n
//	})
//	f.Call(1) // 1
//	f.Call(2) // 3
//
//	g := f.Clone() // shares the closure variable n, like any func value
//
//	var h kall.Func[int, int]
//	f.MoveTo(&h) // f is empty now
//	if _, ok := f.TryCall(1); !ok {
//		// moved-from containers report empty
//	}
//	_ = g
//	_ = h
package kall
