// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

import (
	"code.hybscloud.com/kall"
)

// Wrap composes the middleware around h, first middleware outermost,
// and stores the wrapped func in a default container. A nil h yields an
// empty container.
func Wrap[R, A any](h func(A) R, mws ...Middleware[R, A]) kall.Func[R, A] {
	if h == nil {
		return kall.Func[R, A]{}
	}
	return kall.New(Chain(mws...)(h))
}
