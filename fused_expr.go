// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"code.hybscloud.com/kont"
)

var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprClose       kont.Erased = Close{}
)

func identityResume(v kont.Erased) kont.Erased { return v }

func readBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprReadBind decodes a value with d and passes it to f.
// Fuses ExprPerform(Read[T]{Decoder: d}) + ExprBind.
func ExprReadBind[T, B any](d Decoder[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = readBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Read[T]{Decoder: d}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// suspendThen suspends on op and, once the handler resumes, continues
// with second.
func suspendThen[B any](op kont.Operation, second kont.Expr[kont.Erased]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = second
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprWriteThen encodes e and then continues with next.
// The handler's result for the write is discarded.
func ExprWriteThen[B any](e Encoder, next kont.Expr[B]) kont.Expr[B] {
	return suspendThen[B](Write{Encoder: e}, kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame})
}

// ExprCloseDone closes the Conn's output and returns a.
func ExprCloseDone[A any](a A) kont.Expr[A] {
	return suspendThen[A](exprClose, kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame})
}
