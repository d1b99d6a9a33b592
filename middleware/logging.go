// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

import (
	"time"

	"go.uber.org/zap"
)

// Logged returns middleware that logs every call at debug level with
// the given call name, the outcome ("ok", or "panic" when the wrapped
// func panics — the panic still propagates), and the elapsed time.
// A nil logger disables logging.
func Logged[R, A any](logger *zap.Logger, name string) Middleware[R, A] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next func(A) R) func(A) R {
		return func(v A) R {
			start := time.Now()
			outcome := "panic"
			defer func() {
				logger.Debug("call finished",
					zap.String("call_name", name),
					zap.String("outcome", outcome),
					zap.Duration("elapsed", time.Since(start)),
				)
			}()
			out := next(v)
			outcome = "ok"
			return out
		}
	}
}
