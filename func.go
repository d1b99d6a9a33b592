// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Func is the default container: copyable, movable, heap fallback
// allowed. It holds any callable of signature func(A) R — a plain func,
// a closure, a method value, or a [Callable] functor — behind one
// concrete handle type, and dispatches every later call, clone, move and
// destroy through the handles installed at construction.
//
// The zero value is a valid empty container. Calling an empty container
// panics; [Func.TryCall] is the non-panicking probe.
//
// Plain assignment copies the handle, not the stored state: both values
// then operate on the same stored callable, the way two slice headers
// share one array. Use [Func.Clone] for an independent copy.
type Func[R, A any] struct {
	core core[R, A]
}

// New constructs a container from a func value. Func values are
// pointer-shaped, so placement is local and construction does not
// allocate. A nil fn yields an empty container.
func New[R, A any](fn func(A) R, opts ...Option) Func[R, A] {
	var f Func[R, A]
	installFunc(&f.core, fn, newConfig(opts))
	return f
}

// NewCallable constructs a container from a [Callable], stored as given:
// a pointer functor keeps pointing at the caller's state, a value
// functor is boxed. Values that are themselves containers are rejected;
// nil callables yield an empty container.
func NewCallable[R, A any, F Callable[R, A]](fn F, opts ...Option) Func[R, A] {
	var f Func[R, A]
	installCallable(&f.core, fn, newConfig(opts), false)
	return f
}

// Own constructs a container from a functor value it clones in and owns
// outright. *F must carry the Call method. Clones of the container clone
// the state again, so copies are fully independent — the value-semantics
// door. The result and argument type parameters cannot be inferred from
// fn and are given explicitly:
//
//	c := kall.Own[int, int](counter{})
func Own[R, A, F any, PF interface {
	*F
	Callable[R, A]
}](fn F, opts ...Option) Func[R, A] {
	var f Func[R, A]
	installOwned[R, A, F, PF](&f.core, fn, newConfig(opts))
	return f
}

// Call invokes the stored callable. Panics if the container is empty.
func (f *Func[R, A]) Call(v A) R {
	return f.core.call(v)
}

// TryCall attempts to invoke the stored callable.
// Returns (result, true) when engaged, or (zero, false) when empty.
func (f *Func[R, A]) TryCall(v A) (R, bool) {
	return f.core.tryCall(v)
}

// Valid reports whether the container holds a callable.
func (f *Func[R, A]) Valid() bool {
	return f.core.valid()
}

// Inlined reports whether the stored callable uses local placement.
// An empty container reports false.
func (f *Func[R, A]) Inlined() bool {
	return f.core.inlined()
}

// Cap returns the container's inline capacity in bytes.
func (f *Func[R, A]) Cap() int {
	return f.core.capacity()
}

// Set replaces the stored callable with fn, destroying the previous one.
// Set(nil) is Reset. Functor reassignment composes the doors instead:
//
//	o := kall.Own[R, A](state)
//	o.MoveTo(&f)
func (f *Func[R, A]) Set(fn func(A) R) {
	f.core.reset()
	installFunc(&f.core, fn, config{cap: f.core.cap})
}

// Reset destroys the stored callable, if any, and empties the container.
func (f *Func[R, A]) Reset() {
	f.core.reset()
}

// Clone returns an independent copy of the container. Word placements
// duplicate the callable value itself (a cloned closure shares its
// captured variables, as Go closures do); state installed through [Own]
// is deep-copied, so mutations through the clone never reach the source.
func (f *Func[R, A]) Clone() Func[R, A] {
	var dst Func[R, A]
	f.core.cloneInto(&dst.core)
	return dst
}

// MoveTo transfers the stored callable into dst and leaves f empty.
// dst's previous callable is destroyed. Moving an empty container
// empties dst.
func (f *Func[R, A]) MoveTo(dst *Func[R, A]) {
	f.core.moveTo(&dst.core)
}

// Swap exchanges the full state of the two containers without invoking
// either stored callable.
func (f *Func[R, A]) Swap(o *Func[R, A]) {
	f.core.swapWith(&o.core)
}

func (*Func[R, A]) container() {}
