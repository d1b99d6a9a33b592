// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/kall"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// --- Group 1: Dispatch ---

// TestPropertyDispatchIdentity: a container holding the identity func
// returns every argument unchanged.
func TestPropertyDispatchIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := kall.New(func(x int) int { return x })
	for range propertyN {
		a := randInt(rng)
		if got := f.Call(a); got != a {
			t.Fatalf("identity dispatch: %d != %d", got, a)
		}
	}
}

// TestPropertyDispatchLastAssigned: after a chain of reassignments the
// container dispatches to exactly the last assigned callable.
func TestPropertyDispatchLastAssigned(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		f := kall.New(func(x int) int { return 0 })
		n := rng.IntN(4) + 1
		last := 0
		for range n {
			k := randInt(rng)
			f.Set(func(x int) int { return x + k })
			last = k
		}
		a := randInt(rng)
		if got := f.Call(a); got != a+last {
			t.Fatalf("last assigned: %d != %d (a=%d k=%d)", got, a+last, a, last)
		}
	}
}

// --- Group 2: Clone Independence ---

// TestPropertyCloneIndependence: advancing an owned clone never moves
// the source, and advancing the source never moves the clone.
func TestPropertyCloneIndependence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		base := randInt(rng)
		src := kall.Own[int, int](counter{n: base})
		dup := src.Clone()

		d1 := rng.IntN(10) + 1
		d2 := rng.IntN(10) + 1
		if got := dup.Call(d1); got != base+d1 {
			t.Fatalf("clone advance: %d != %d (base=%d d1=%d)", got, base+d1, base, d1)
		}
		if got := src.Call(d2); got != base+d2 {
			t.Fatalf("source advance: %d != %d (base=%d d2=%d)", got, base+d2, base, d2)
		}
		if got := dup.Call(0); got != base+d1 {
			t.Fatalf("clone leaked source mutation: %d != %d", got, base+d1)
		}
	}
}

// --- Group 3: Move ---

// TestPropertyMoveTransfers: after a move the destination produces the
// source's results and the source is empty.
func TestPropertyMoveTransfers(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		k := randInt(rng)
		src := kall.New(func(x int) int { return x + k })
		var dst kall.Func[int, int]

		src.MoveTo(&dst)
		if src.Valid() {
			t.Fatalf("moved-from container still engaged (k=%d)", k)
		}
		a := randInt(rng)
		if got := dst.Call(a); got != a+k {
			t.Fatalf("move transfer: %d != %d (a=%d k=%d)", got, a+k, a, k)
		}
	}
}

// --- Group 4: Swap ---

// TestPropertySwapExchanges: one swap exchanges the stored callables,
// a second swap restores them.
func TestPropertySwapExchanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randInt(rng)
		q := randInt(rng)
		f := kall.New(kall.Const[int, kall.Unit](p))
		g := kall.New(kall.Const[int, kall.Unit](q))

		f.Swap(&g)
		if f.Call(kall.Unit{}) != q || g.Call(kall.Unit{}) != p {
			t.Fatalf("swap exchange failed (p=%d q=%d)", p, q)
		}

		f.Swap(&g)
		if f.Call(kall.Unit{}) != p || g.Call(kall.Unit{}) != q {
			t.Fatalf("double swap is not identity (p=%d q=%d)", p, q)
		}
	}
}

// --- Group 5: Composition ---

// TestPropertyComposeAndThenAgree: Compose(g, f)(x) ≡ AndThen(f, g)(x) ≡ g(f(x))
func TestPropertyComposeAndThenAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		j := randInt(rng)
		k := randInt(rng)
		f := func(x int) int { return x + j }
		g := func(x int) int { return x * k }

		a := randInt(rng)
		want := g(f(a))
		if got := kall.Compose(g, f)(a); got != want {
			t.Fatalf("compose: %d != %d (a=%d j=%d k=%d)", got, want, a, j, k)
		}
		if got := kall.AndThen(f, g)(a); got != want {
			t.Fatalf("and-then: %d != %d (a=%d j=%d k=%d)", got, want, a, j, k)
		}
	}
}

// --- Group 6: Once ---

// TestPropertyOnceConsumesExactlyOnce: the first TryCall yields the
// payload, every later TryCall fails.
func TestPropertyOnceConsumesExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		k := randInt(rng)
		o := kall.NewOnce(kall.Thunk(func() int { return k }))

		got, ok := o.TryCall(kall.Unit{})
		if !ok || got != k {
			t.Fatalf("first consume: got (%d,%v), want (%d,true)", got, ok, k)
		}
		if _, ok := o.TryCall(kall.Unit{}); ok {
			t.Fatalf("second consume succeeded (k=%d)", k)
		}
	}
}
