// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// Callable is the interface form of a stored callable: any value with a
// Call method of the container's signature. Plain func values enter
// through the func constructor doors instead; method values are func
// values and need no adapter.
type Callable[R, A any] interface {
	Call(A) R
}

// invokeFn and manageFn are the two dispatch handles installed at
// construction time. Together they carry all type-specific knowledge a
// container retains about its stored callable: invokeFn calls it,
// manageFn performs the lifecycle operations. An empty container holds
// nil handles.
type (
	invokeFn[R, A any] func(c *cell, v A) R
	manageFn           func(op manageOp, src, dst *cell)
)

// manageOp tags the lifecycle operation a manage handle must perform.
type manageOp uint8

const (
	// opDestruct drops the stored callable from src.
	opDestruct manageOp = iota
	// opMove relocates the stored callable from src to dst and empties src.
	opMove
	// opCopy places an independent duplicate of src's callable at dst.
	opCopy
)

// invokeDirect invokes a func value held in local placement.
// Named generic functions produce a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func invokeDirect[R, A any](c *cell, v A) R {
	return c.fn.(func(A) R)(v)
}

// invokeCallable invokes a stored [Callable], whether held in local
// placement (pointer functors) or behind a box (value functors and
// container-owned state).
func invokeCallable[R, A any](c *cell, v A) R {
	return c.fn.(Callable[R, A]).Call(v)
}

// wrapped marks every container variant of this family. The constructor
// doors reject values that already carry the marker, so a container can
// never be stored inside another container by accident.
type wrapped interface {
	container()
}
