// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Step evaluates a codec protocol until the first effect suspension.
// Returns (Right(result), nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// Advance dispatches the suspended codec operation on c.
//
// On success (nil error) the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock the suspension is returned unconsumed and may be
// retried once the transport is ready; partial progress is kept in c.
// A failed decode or encode discards the suspension and returns Left.
func Advance[R any](c *Conn, susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	op, ok := susp.Op().(connDispatcher)
	if !ok {
		panic("codec: unhandled effect in Advance")
	}
	v, err := op.DispatchCodec(&c.ctx)
	if err != nil {
		if iox.IsWouldBlock(err) {
			var zero kont.Either[error, R]
			return zero, susp, err
		}
		susp.Discard()
		return kont.Left[error, R](err), nil, nil
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
