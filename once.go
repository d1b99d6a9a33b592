// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Once is the consume-on-call container. The stored callable can be
// invoked at most once: Call moves the whole container into a temporary,
// invokes through the temporary's dispatch handles, and destroys the
// payload when the call returns, so the container is empty before the
// callable even runs. A second Call panics (empty container) and
// [Once.TryCall] returns false.
//
// Consume-on-call implies movability, so Once is move-only. One-shot
// enforcement is a sequential guarantee with no internal
// synchronization; callers serialize access to an instance, as with
// every variant.
//
// The zero value is a valid empty container.
type Once[R, A any] struct {
	noCopy noCopy
	core   core[R, A]
}

// NewOnce constructs a consume-on-call container from a func value.
// A nil fn yields an empty container.
func NewOnce[R, A any](fn func(A) R, opts ...Option) *Once[R, A] {
	o := new(Once[R, A])
	installFunc(&o.core, fn, newConfig(opts))
	return o
}

// NewOnceCallable constructs a consume-on-call container from a
// [Callable], stored as given. Containers are rejected; nil callables
// yield an empty container.
func NewOnceCallable[R, A any, F Callable[R, A]](fn F, opts ...Option) *Once[R, A] {
	o := new(Once[R, A])
	installCallable(&o.core, fn, newConfig(opts), false)
	return o
}

// Call invokes the stored callable and consumes it. The container is
// empty from before the callable runs, whether the call returns
// normally or panics. Panics if the container is already empty.
func (o *Once[R, A]) Call(v A) R {
	if o.core.cell.manage == nil {
		badCall()
	}
	var tmp core[R, A]
	o.core.moveTo(&tmp)
	defer tmp.reset()
	return tmp.invoke(&tmp.cell, v)
}

// TryCall attempts to invoke and consume the stored callable.
// Returns (result, true) on success, or (zero, false) if the container
// is empty or already consumed.
func (o *Once[R, A]) TryCall(v A) (R, bool) {
	if o.core.cell.manage == nil {
		var zero R
		return zero, false
	}
	return o.Call(v), true
}

// Valid reports whether the container still holds its callable.
func (o *Once[R, A]) Valid() bool {
	return o.core.valid()
}

// Inlined reports whether the stored callable uses local placement.
func (o *Once[R, A]) Inlined() bool {
	return o.core.inlined()
}

// Cap returns the container's inline capacity in bytes.
func (o *Once[R, A]) Cap() int {
	return o.core.capacity()
}

// Set replaces the stored callable with fn, rearming the container.
// The previous callable, consumed or not, is destroyed. Set(nil) is
// Reset.
func (o *Once[R, A]) Set(fn func(A) R) {
	o.core.reset()
	installFunc(&o.core, fn, config{cap: o.core.cap})
}

// Reset destroys the stored callable without invoking it and empties
// the container.
func (o *Once[R, A]) Reset() {
	o.core.reset()
}

// MoveTo transfers the unconsumed callable into dst and leaves o empty.
// dst's previous callable is destroyed.
func (o *Once[R, A]) MoveTo(dst *Once[R, A]) {
	o.core.moveTo(&dst.core)
}

// Swap exchanges the full state of the two containers without invoking
// or consuming either stored callable.
func (o *Once[R, A]) Swap(other *Once[R, A]) {
	o.core.swapWith(&other.core)
}

func (*Once[R, A]) container() {}
