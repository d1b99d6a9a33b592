// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry

import (
	"go.uber.org/zap"
)

// defaultShards is the shard count of registries built without
// [WithShards].
const defaultShards = 8

type config struct {
	shards int
	logger *zap.Logger
}

// Option configures a [Registry] at construction time.
type Option func(*config)

// WithShards sets the shard count. Values below 1 are treated as 1.
func WithShards(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.shards = n
	}
}

// WithLogger sets the logger for registry lifecycle events. A nil
// logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{
		shards: defaultShards,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
