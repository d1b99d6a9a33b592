// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/kall"
)

// counter is a pointer functor: Call mutates the pointee.
type counter struct {
	n int
}

func (c *counter) Call(d int) int {
	c.n += d
	return c.n
}

// adder is a value functor: Call cannot mutate the stored state.
type adder struct {
	base int
}

func (a adder) Call(x int) int {
	return a.base + x
}

// wide is a functor larger than the default inline capacity.
type wide struct {
	pad [64]byte
}

func (w wide) Call(x int) int {
	return x + len(w.pad)
}

const emptyCallMessage = "kall: call on empty function container"

// expectPanic fails the test unless fn panics with the given message.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		if s, ok := r.(string); !ok || s != want {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	fn()
}

func TestZeroValueIsEmpty(t *testing.T) {
	var f kall.Func[int, int]
	if f.Valid() {
		t.Fatal("expected zero value to be empty")
	}
	if _, ok := f.TryCall(1); ok {
		t.Fatal("expected TryCall to fail on empty container")
	}
	expectPanic(t, emptyCallMessage, func() {
		f.Call(1)
	})
}

func TestNilFuncIsEmpty(t *testing.T) {
	f := kall.New[int, int](nil)
	if f.Valid() {
		t.Fatal("expected New(nil) to be empty")
	}

	g := kall.NewCallable[int, int]((*counter)(nil))
	if g.Valid() {
		t.Fatal("expected NewCallable(typed nil) to be empty")
	}
}

func TestCallDispatch(t *testing.T) {
	f := kall.New(func(x int) int { return x * 2 })
	if got := f.Call(21); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	got, ok := f.TryCall(10)
	if !ok {
		t.Fatal("expected TryCall to succeed on engaged container")
	}
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestProcDispatch(t *testing.T) {
	b := strings.Builder{}
	f := kall.New(kall.Proc(func(s string) { b.WriteString(s) }))

	f.Call("ka")
	f.Call("ll")
	if got := b.String(); got != "kall" {
		t.Fatalf("got %q, want %q", got, "kall")
	}
}

func TestCallableDispatch(t *testing.T) {
	c := counter{}
	f := kall.NewCallable[int, int](&c)

	if got := f.Call(3); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := f.Call(4); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	// Pointer functors alias the caller's state.
	if c.n != 7 {
		t.Fatalf("caller state = %d, want 7", c.n)
	}
}

func TestValueFunctorDispatch(t *testing.T) {
	f := kall.NewCallable[int, int](adder{base: 40})
	if got := f.Call(2); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if f.Inlined() {
		t.Fatal("expected value functor to use dynamic placement")
	}
}

func TestPlacementIntrospection(t *testing.T) {
	f := kall.New(func(x int) int { return x })
	if !f.Inlined() {
		t.Fatal("expected func value to use local placement")
	}
	if got := f.Cap(); got != kall.DefaultCap {
		t.Fatalf("got cap %d, want %d", got, kall.DefaultCap)
	}

	g := kall.NewCallable[int, int](&counter{}, kall.WithCap(64))
	if !g.Inlined() {
		t.Fatal("expected pointer functor to use local placement")
	}
	if got := g.Cap(); got != 64 {
		t.Fatalf("got cap %d, want 64", got)
	}

	h := kall.Own[int, int](counter{})
	if h.Inlined() {
		t.Fatal("expected owned state to use dynamic placement")
	}

	var empty kall.Func[int, int]
	if empty.Inlined() {
		t.Fatal("expected empty container to report not inlined")
	}
}

func TestSetReplacesCallable(t *testing.T) {
	f := kall.New(func(x int) int { return x + 1 })
	if got := f.Call(1); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}

	f.Set(func(x int) int { return x * 10 })
	if got := f.Call(1); got != 10 {
		t.Fatalf("got %d, want 10 after Set", got)
	}

	f.Set(nil)
	if f.Valid() {
		t.Fatal("expected Set(nil) to empty the container")
	}
}

func TestReset(t *testing.T) {
	f := kall.New(func(x int) int { return x })
	f.Reset()
	if f.Valid() {
		t.Fatal("expected Reset to empty the container")
	}
	// Reset on empty is a no-op.
	f.Reset()
	if f.Valid() {
		t.Fatal("expected container to stay empty")
	}
}

func TestCloneSharesClosure(t *testing.T) {
	n := 0
	f := kall.New(func(d int) int {
		n += d
		return n
	})
	g := f.Clone()

	// A cloned func value shares its captured variables, as any copied
	// Go func value does.
	if got := f.Call(1); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := g.Call(1); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestCloneOwnedIndependence(t *testing.T) {
	src := kall.Own[int, int](counter{n: 10})
	dup := src.Clone()

	// Advancing the clone must not touch the source's state.
	if got := dup.Call(5); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
	if got := dup.Call(5); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if got := src.Call(1); got != 11 {
		t.Fatalf("source state moved with the clone: got %d, want 11", got)
	}

	// And the other way round.
	if got := dup.Call(0); got != 20 {
		t.Fatalf("clone state moved with the source: got %d, want 20", got)
	}
}

func TestOwnClonesArgument(t *testing.T) {
	state := counter{n: 3}
	f := kall.Own[int, int](state)

	if got := f.Call(1); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	// The container owns a private copy; the original value is untouched.
	if state.n != 3 {
		t.Fatalf("argument state = %d, want 3", state.n)
	}
}

func TestMoveTo(t *testing.T) {
	f := kall.New(func(x int) int { return x + 100 })
	var g kall.Func[int, int]

	f.MoveTo(&g)

	if f.Valid() {
		t.Fatal("expected moved-from container to be empty")
	}
	expectPanic(t, emptyCallMessage, func() {
		f.Call(1)
	})
	if got := g.Call(1); got != 101 {
		t.Fatalf("got %d, want 101", got)
	}
}

func TestMoveEmptyEmptiesDestination(t *testing.T) {
	var f kall.Func[int, int]
	g := kall.New(func(x int) int { return x })

	f.MoveTo(&g)
	if g.Valid() {
		t.Fatal("expected destination to be emptied by moving an empty container")
	}
}

func TestMoveToSelf(t *testing.T) {
	f := kall.New(func(x int) int { return x * 3 })
	f.MoveTo(&f)
	if got := f.Call(2); got != 6 {
		t.Fatalf("got %d, want 6 after self-move", got)
	}
}

func TestMoveOwnedTransfersBox(t *testing.T) {
	f := kall.Own[int, int](counter{n: 1})
	_ = f.Call(1) // state now 2
	var g kall.Func[int, int]

	f.MoveTo(&g)
	if got := g.Call(1); got != 3 {
		t.Fatalf("got %d, want 3: moved state must continue where it left off", got)
	}
}

func TestSwapExchangesWithoutInvoking(t *testing.T) {
	calls := 0
	f := kall.New(func(x int) int { calls++; return 1 })
	g := kall.New(func(x int) int { calls++; return 2 })

	f.Swap(&g)
	if calls != 0 {
		t.Fatalf("swap invoked a stored callable %d times", calls)
	}

	if got := f.Call(0); got != 2 {
		t.Fatalf("got %d, want 2 after swap", got)
	}
	if got := g.Call(0); got != 1 {
		t.Fatalf("got %d, want 1 after swap", got)
	}
}

func TestSwapWithEmpty(t *testing.T) {
	f := kall.New(func(x int) int { return 7 })
	var g kall.Func[int, int]

	f.Swap(&g)
	if f.Valid() {
		t.Fatal("expected f to be empty after swapping with empty")
	}
	if got := g.Call(0); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

// TestEndToEnd is the full scenario: a counting closure called three
// times, reassignment from nil, and a move of a string thunk.
func TestEndToEnd(t *testing.T) {
	n := 0
	f := kall.New(func(kall.Unit) int {
		v := n
		n++
		return v
	})

	for want := 0; want < 3; want++ {
		if got := f.Call(kall.Unit{}); got != want {
			t.Fatalf("call %d: got %d, want %d", want, got, want)
		}
	}

	f.Set(nil)
	if f.Valid() {
		t.Fatal("expected container to be empty after Set(nil)")
	}
	expectPanic(t, emptyCallMessage, func() {
		f.Call(kall.Unit{})
	})

	src := kall.New(kall.Thunk(func() string { return "fixed result" }))
	var dst kall.Func[string, kall.Unit]
	src.MoveTo(&dst)

	if src.Valid() {
		t.Fatal("expected moved-from container to be empty")
	}
	if got := dst.Call(kall.Unit{}); got != "fixed result" {
		t.Fatalf("got %q, want %q", got, "fixed result")
	}
}
