// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kall

// DefaultCap is the inline capacity, in bytes, of containers constructed
// without [WithCap]: four machine words.
const DefaultCap = 4 * wordSize

// config collects per-container construction settings.
type config struct {
	cap int
}

// Option configures a container at construction time.
type Option func(*config)

// WithCap sets the container's inline capacity in bytes. The capacity
// bounds the size of the concrete callable type a container accepts for
// local placement; on [Inline] containers it is a hard bound on the
// stored type itself. A capacity smaller than one word cannot hold even
// the box pointer of dynamic placement, so every later construction
// through it fails. Panics if n is not positive.
func WithCap(n int) Option {
	if n <= 0 {
		badOption()
	}
	return func(c *config) {
		c.cap = n
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}
