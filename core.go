// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

import (
	"reflect"
)

// core is the policy-unaware engine every container variant wraps. It
// owns the storage cell and the two dispatch handles and implements the
// full lifecycle; the variants expose the slice of this surface their
// policy permits. core methods never synchronize: one container instance
// is single-threaded by contract, distinct instances are independent.
type core[R, A any] struct {
	invoke invokeFn[R, A]
	cap    int
	cell   cell
}

// capacity resolves the configured inline capacity, applying the default
// so that zero-value containers are usable empty containers.
func (c *core[R, A]) capacity() int {
	if c.cap == 0 {
		return DefaultCap
	}
	return c.cap
}

func (c *core[R, A]) valid() bool {
	return c.cell.manage != nil
}

func (c *core[R, A]) inlined() bool {
	return c.cell.manage != nil && !c.cell.boxed
}

func (c *core[R, A]) call(v A) R {
	if c.cell.manage == nil {
		badCall()
	}
	return c.invoke(&c.cell, v)
}

func (c *core[R, A]) tryCall(v A) (R, bool) {
	if c.cell.manage == nil {
		var zero R
		return zero, false
	}
	return c.invoke(&c.cell, v), true
}

// reset destroys the stored callable, if any, and returns to empty.
func (c *core[R, A]) reset() {
	if c.cell.manage == nil {
		return
	}
	c.cell.manage(opDestruct, &c.cell, nil)
	c.cell.manage = nil
	c.cell.boxed = false
	c.invoke = nil
}

// moveTo transfers the whole container state — stored callable, dispatch
// handles, capacity configuration — into dst and leaves c empty. dst's
// previous callable, if any, is destroyed first. Moving an empty
// container empties dst.
func (c *core[R, A]) moveTo(dst *core[R, A]) {
	if dst == c {
		return
	}
	dst.reset()
	dst.cap = c.cap
	if c.cell.manage == nil {
		return
	}
	dst.invoke = c.invoke
	dst.cell.manage = c.cell.manage
	dst.cell.boxed = c.cell.boxed
	c.cell.manage(opMove, &c.cell, &dst.cell)
	c.cell.manage = nil
	c.cell.boxed = false
	c.invoke = nil
}

// swapWith exchanges the complete state of two containers without
// invoking either stored callable. Both cells relocate by word or box
// pointer, so the exchange cannot fail partway.
func (c *core[R, A]) swapWith(o *core[R, A]) {
	c.invoke, o.invoke = o.invoke, c.invoke
	c.cap, o.cap = o.cap, c.cap
	c.cell, o.cell = o.cell, c.cell
}

// cloneInto places an independent duplicate of c's state into dst.
// What "independent" means per placement is the manage handle's
// business: word placements duplicate the callable value, owned boxes
// are deep-copied.
func (c *core[R, A]) cloneInto(dst *core[R, A]) {
	if dst == c {
		return
	}
	dst.reset()
	dst.cap = c.cap
	if c.cell.manage == nil {
		return
	}
	dst.invoke = c.invoke
	dst.cell.manage = c.cell.manage
	dst.cell.boxed = c.cell.boxed
	c.cell.manage(opCopy, &c.cell, &dst.cell)
}

// installFunc places a plain func value. Func values are one word and
// pointer-shaped, so placement is always local; a capacity below one
// word cannot hold the value nor a box pointer and is a configuration
// error on every variant. A nil fn leaves the container empty.
func installFunc[R, A any](c *core[R, A], fn func(A) R, cfg config) {
	c.cap = cfg.cap
	if fn == nil {
		return
	}
	if wordSize > c.capacity() {
		badCap()
	}
	c.cell.fn = fn
	c.cell.manage = manageWord
	c.invoke = invokeDirect[R, A]
}

// installCallable places a [Callable] of concrete type F as given.
// Pointer-shaped F gets local placement and aliases the caller's value;
// other F boxes into dynamic placement. Under strict (no heap fallback),
// a callable that cannot use local placement is a construction-time
// configuration error: capacity overflow reports insufficient capacity,
// a non-pointer-shaped type reports that it requires dynamic placement.
func installCallable[R, A any, F Callable[R, A]](c *core[R, A], fn F, cfg config, strict bool) {
	c.cap = cfg.cap
	if nilCallable[R, A](fn) {
		return
	}
	if _, ok := any(fn).(wrapped); ok {
		badNested()
	}
	t := reflect.TypeFor[F]()
	if pointerShaped(t.Kind()) {
		if int(t.Size()) > c.capacity() {
			badCap()
		}
		c.cell.fn = fn
		c.cell.manage = manageWord
		c.invoke = invokeCallable[R, A]
		return
	}
	if strict {
		if int(t.Size()) > c.capacity() {
			badCap()
		}
		badShape()
	}
	if wordSize > c.capacity() {
		badCap()
	}
	c.cell.fn = fn
	c.cell.manage = manageBoxed[F]
	c.cell.boxed = true
	c.invoke = invokeCallable[R, A]
}

// installOwned clones a functor value into a container-owned box. The
// pointer type *F must carry the Call method; the box is the one heap
// allocation of dynamic placement and the container is its sole owner.
func installOwned[R, A, F any, PF interface {
	*F
	Callable[R, A]
}](c *core[R, A], fn F, cfg config) {
	c.cap = cfg.cap
	p := PF(&fn)
	if _, ok := any(p).(wrapped); ok {
		badNested()
	}
	if wordSize > c.capacity() {
		badCap()
	}
	c.cell.fn = p
	c.cell.manage = manageOwned[F]
	c.cell.boxed = true
	c.invoke = invokeCallable[R, A]
}

// installIface places a [Callable] received as a bare interface value,
// the reassignment door on strictly inline containers. Placement must
// be local: without the concrete type there is no manage handle that
// could duplicate a heap box, so the dynamic type is checked against
// the same rules as [installCallable] under strict and non-qualifying
// callables panic. Nil callables leave the container empty; containers
// are rejected.
func installIface[R, A any](c *core[R, A], fn Callable[R, A], cfg config) {
	c.cap = cfg.cap
	if nilCallable[R, A](fn) {
		return
	}
	if _, ok := fn.(wrapped); ok {
		badNested()
	}
	t := reflect.TypeOf(fn)
	if pointerShaped(t.Kind()) {
		if int(t.Size()) > c.capacity() {
			badCap()
		}
		c.cell.fn = fn
		c.cell.manage = manageWord
		c.invoke = invokeCallable[R, A]
		return
	}
	if int(t.Size()) > c.capacity() {
		badCap()
	}
	badShape()
}

// nilCallable reports whether fn is nil in any of the forms a callable
// can be nil: a nil interface, or a typed nil func, pointer, map or
// chan. Containers constructed from such values stay empty, the same
// rule std-style function wrappers apply to null function pointers.
func nilCallable[R, A any, F Callable[R, A]](fn F) bool {
	if any(fn) == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// noCopy triggers go vet's copylocks check when embedded in a value that
// must not be duplicated by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
