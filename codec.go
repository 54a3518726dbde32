// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"io"
)

// Decoder is an incremental decoder producing a value of type T.
//
// PollDecode performs one bounded step against r and reports the outcome
// through its results:
//
//   - Done: next == nil, err == nil. item is the decoded value.
//   - Progress: next != nil, err == nil. Poll next again immediately.
//   - Suspended: next != nil, err == iox.ErrWouldBlock. Poll next again
//     once r is ready.
//   - Failed: next == nil, err != nil. err is a [*DecodeError].
//
// n is the number of bytes consumed during this step only.
// The receiver is never modified; the remaining work is carried by next.
// A decoder that reported Done or Failed must not be polled again.
type Decoder[T any] interface {
	PollDecode(r io.Reader) (item T, next Decoder[T], n int, err error)
}

// Encoder is an incremental encoder writing a value into a transport.
//
// PollEncode follows the same outcome rules as [Decoder.PollDecode]
// without an item. Encode failures are the writer's errors.
type Encoder interface {
	PollEncode(w io.Writer) (next Encoder, n int, err error)
}

// LenEncoder is an Encoder that knows how many bytes it still has to write.
//
// RemainingBytes is non-increasing across steps and reaches 0 at Done,
// assuming no transport failure. Every next state returned by a LenEncoder
// must itself be a LenEncoder.
type LenEncoder interface {
	Encoder
	RemainingBytes() int
}

// Pair is the item produced by [Chain].
type Pair[A, B any] struct {
	First  A
	Second B
}

// remaining returns e's remaining byte count, panicking if e is not length-aware.
func remaining(e Encoder) int {
	le, ok := e.(LenEncoder)
	if !ok {
		panic("codec: encoder is not length-aware")
	}
	return le.RemainingBytes()
}

// readyDecoder completes immediately without touching the transport.
type readyDecoder[T any] struct {
	v T
}

// Ready returns a decoder that completes with v after consuming nothing.
func Ready[T any](v T) Decoder[T] {
	return readyDecoder[T]{v: v}
}

func (d readyDecoder[T]) PollDecode(io.Reader) (T, Decoder[T], int, error) {
	return d.v, nil, 0, nil
}

type failDecoder[T any] struct {
	err error
}

// Fail returns a decoder that fails with a data error wrapping err.
func Fail[T any](err error) Decoder[T] {
	return failDecoder[T]{err: err}
}

func (d failDecoder[T]) PollDecode(io.Reader) (T, Decoder[T], int, error) {
	var zero T
	return zero, nil, 0, Data(d.err)
}
