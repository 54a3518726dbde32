// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"code.hybscloud.com/kont"
)

// Reify turns a Cont-world protocol into an Expr-world one that [Step]
// and [Advance] can evaluate one read or write at a time.
func Reify[A any](protocol kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(protocol)
}

// Reflect turns an Expr-world protocol back into Cont-world, for [Exec]
// and [Run].
func Reflect[A any](protocol kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(protocol)
}

// Loop repeats step over a connection, for example reading frames until
// an empty one arrives. step yields Left with the next state to go on,
// or Right with the result to stop.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if state, more := e.GetLeft(); more {
			return Loop(state, step)
		}
		result, _ := e.GetRight()
		return kont.Pure(result)
	})
}
