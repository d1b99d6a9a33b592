// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Inline is the strictly inline container for allocation- and
// latency-sensitive call sites: local placement is mandatory, heap
// fallback is forbidden, and the public surface is non-relocatable (no
// clone, no move, no swap). A callable that cannot live in the cell is
// rejected when the container is constructed — the earliest the
// language can check — with a distinct panic per cause: one for a
// concrete type larger than the capacity, one for a type that is not
// pointer-shaped and would need a heap box.
//
// Func values and pointer functors qualify; value functors never do.
// A pointer functor aliases the caller's state, so Inline bounds the
// container's own footprint, not the callable's reachable state.
//
// The zero value is a valid empty container.
type Inline[R, A any] struct {
	noCopy noCopy
	core   core[R, A]
}

// NewInline constructs a strictly inline container from a func value.
// A nil fn yields an empty container. Panics if the capacity cannot
// hold one word.
func NewInline[R, A any](fn func(A) R, opts ...Option) *Inline[R, A] {
	i := new(Inline[R, A])
	installFunc(&i.core, fn, newConfig(opts))
	return i
}

// NewInlineCallable constructs a strictly inline container from a
// [Callable]. Placement must be local: a callable over the capacity or
// of a non-pointer-shaped type panics at construction. Containers are
// rejected; nil callables yield an empty container.
func NewInlineCallable[R, A any, F Callable[R, A]](fn F, opts ...Option) *Inline[R, A] {
	i := new(Inline[R, A])
	installCallable(&i.core, fn, newConfig(opts), true)
	return i
}

// Call invokes the stored callable. Panics if the container is empty.
func (i *Inline[R, A]) Call(v A) R {
	return i.core.call(v)
}

// TryCall attempts to invoke the stored callable.
// Returns (result, true) when engaged, or (zero, false) when empty.
func (i *Inline[R, A]) TryCall(v A) (R, bool) {
	return i.core.tryCall(v)
}

// Valid reports whether the container holds a callable.
func (i *Inline[R, A]) Valid() bool {
	return i.core.valid()
}

// Inlined reports whether the container is engaged; an engaged Inline
// container is always locally placed.
func (i *Inline[R, A]) Inlined() bool {
	return i.core.inlined()
}

// Cap returns the container's inline capacity in bytes.
func (i *Inline[R, A]) Cap() int {
	return i.core.capacity()
}

// Set replaces the stored callable with fn, destroying the previous
// one. Set(nil) is Reset. Reassignment installs fresh dispatch handles;
// it does not relocate the stored value, so the non-relocatable surface
// is preserved.
func (i *Inline[R, A]) Set(fn func(A) R) {
	i.core.reset()
	installFunc(&i.core, fn, config{cap: i.core.cap})
}

// SetCallable replaces the stored callable with a [Callable], under the
// same placement rules as [NewInlineCallable]: the callable's dynamic
// type must be pointer-shaped and fit the capacity, or the call panics.
// This is the reassignment door for pointer functors on this variant,
// which exposes no relocation they could be moved in through.
// SetCallable(nil) is Reset.
func (i *Inline[R, A]) SetCallable(fn Callable[R, A]) {
	i.core.reset()
	installIface(&i.core, fn, config{cap: i.core.cap})
}

// Reset destroys the stored callable, if any, and empties the container.
func (i *Inline[R, A]) Reset() {
	i.core.reset()
}

func (*Inline[R, A]) container() {}
