// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Unique is the move-only container: single ownership of the stored
// callable, relocatable with [Unique.MoveTo] and [Unique.Swap], not
// copyable. go vet's copylocks check flags accidental duplication by
// assignment.
//
// The zero value is a valid empty container.
type Unique[R, A any] struct {
	noCopy noCopy
	core   core[R, A]
}

// NewUnique constructs a move-only container from a func value.
// A nil fn yields an empty container.
func NewUnique[R, A any](fn func(A) R, opts ...Option) *Unique[R, A] {
	u := new(Unique[R, A])
	installFunc(&u.core, fn, newConfig(opts))
	return u
}

// NewUniqueCallable constructs a move-only container from a [Callable],
// stored as given. Containers are rejected; nil callables yield an
// empty container.
func NewUniqueCallable[R, A any, F Callable[R, A]](fn F, opts ...Option) *Unique[R, A] {
	u := new(Unique[R, A])
	installCallable(&u.core, fn, newConfig(opts), false)
	return u
}

// Call invokes the stored callable. Panics if the container is empty.
func (u *Unique[R, A]) Call(v A) R {
	return u.core.call(v)
}

// TryCall attempts to invoke the stored callable.
// Returns (result, true) when engaged, or (zero, false) when empty.
func (u *Unique[R, A]) TryCall(v A) (R, bool) {
	return u.core.tryCall(v)
}

// Valid reports whether the container holds a callable.
func (u *Unique[R, A]) Valid() bool {
	return u.core.valid()
}

// Inlined reports whether the stored callable uses local placement.
func (u *Unique[R, A]) Inlined() bool {
	return u.core.inlined()
}

// Cap returns the container's inline capacity in bytes.
func (u *Unique[R, A]) Cap() int {
	return u.core.capacity()
}

// Set replaces the stored callable with fn, destroying the previous one.
// Set(nil) is Reset.
func (u *Unique[R, A]) Set(fn func(A) R) {
	u.core.reset()
	installFunc(&u.core, fn, config{cap: u.core.cap})
}

// Reset destroys the stored callable, if any, and empties the container.
func (u *Unique[R, A]) Reset() {
	u.core.reset()
}

// MoveTo transfers the stored callable into dst and leaves u empty.
// dst's previous callable is destroyed.
func (u *Unique[R, A]) MoveTo(dst *Unique[R, A]) {
	u.core.moveTo(&dst.core)
}

// Swap exchanges the full state of the two containers without invoking
// either stored callable.
func (u *Unique[R, A]) Swap(o *Unique[R, A]) {
	u.core.swapWith(&o.core)
}

func (*Unique[R, A]) container() {}
