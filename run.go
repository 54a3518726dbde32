// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run creates a connected Conn pair, runs both Cont-world protocols and
// returns both results. See [RunExpr].
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[error, A], kont.Either[error, B]) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr creates a connected Conn pair, runs both Expr-world protocols
// and returns both results. Interleaves both sides on the calling
// goroutine using adaptive backoff (iox.Backoff) when neither side can
// make progress. Does not spawn goroutines or create channels.
//
// A side that finishes, successfully or not, closes its Conn, so a peer
// still waiting for bytes fails with a transport error instead of
// waiting forever.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (kont.Either[error, A], kont.Either[error, B]) {
	ca, cb := NewConnPair(DefaultPipeCapacity)
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	if suspA == nil {
		ca.Close()
	}
	if suspB == nil {
		cb.Close()
	}
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		before := ca.Read() + ca.Written() + cb.Read() + cb.Written()
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = Advance(ca, suspA)
			if err == nil {
				progress = true
				if suspA == nil {
					ca.Close()
				}
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = Advance(cb, suspB)
			if err == nil {
				progress = true
				if suspB == nil {
					cb.Close()
				}
			}
		}
		if !progress && ca.Read()+ca.Written()+cb.Read()+cb.Written() == before {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
