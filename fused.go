// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"code.hybscloud.com/kont"
)

// ReadBind decodes a value with d and passes it to f.
// Fuses Perform(Read[T]{Decoder: d}) + Bind.
func ReadBind[T, B any](d Decoder[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Read[T]{Decoder: d}), f)
}

// WriteThen encodes e and then continues with next.
// Fuses Perform(Write{Encoder: e}) + Then.
func WriteThen[B any](e Encoder, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Write{Encoder: e}), next)
}

// CloseDone closes the Conn's output and returns a.
// Fuses Perform(Close{}) + Then + Pure.
func CloseDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{}), kont.Pure(a))
}
