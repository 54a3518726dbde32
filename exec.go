// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// connHandler implements kont.Handler for codec effects.
// It waits past iox.ErrWouldBlock and short-circuits on failure.
type connHandler[R any] struct {
	ctx *connContext
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h connHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(connDispatcher)
	if !ok {
		panic("codec: unhandled effect in connHandler")
	}
	v, err := dispatchWait(h.ctx, cop)
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// dispatchWait retries DispatchCodec until it succeeds or fails, backing
// off on iox.ErrWouldBlock with iox.Backoff. Backoff resets whenever the
// operation moved bytes.
func dispatchWait(ctx *connContext, op connDispatcher) (kont.Resumed, error) {
	var bo iox.Backoff
	for {
		before := ctx.read + ctx.written
		v, err := op.DispatchCodec(ctx)
		if !iox.IsWouldBlock(err) {
			return v, err
		}
		if ctx.read+ctx.written != before {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world codec protocol on c.
// Returns Right on success, Left with the first decode or encode failure.
// Blocks on iox.ErrWouldBlock via adaptive backoff, without spawning
// goroutines or creating channels.
func Exec[R any](c *Conn, protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := connHandler[R]{ctx: &c.ctx}
	return kont.Handle(wrapped, h)
}

// ExecExpr runs an Expr-world codec protocol on c.
// Returns Right on success, Left with the first decode or encode failure.
func ExecExpr[R any](c *Conn, protocol kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := connHandler[R]{ctx: &c.ctx}
	return kont.HandleExpr(wrapped, h)
}
