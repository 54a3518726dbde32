// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"io"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Read is the effect operation for decoding a value of type T.
// Perform(Read[T]{Decoder: d}) decodes one unit from the Conn's reader.
type Read[T any] struct {
	kont.Phantom[T]
	Decoder Decoder[T]
}

// DispatchCodec resumes the pending decoder, or starts op.Decoder.
// Non-blocking: returns iox.ErrWouldBlock with the partial state kept in ctx.
// A failed decode returns its *DecodeError.
func (op Read[T]) DispatchCodec(ctx *connContext) (kont.Resumed, error) {
	dec := op.Decoder
	if ctx.reading != nil {
		dec = ctx.reading.(Decoder[T])
	}
	for {
		item, next, n, err := dec.PollDecode(ctx.r)
		ctx.read += n
		if next == nil {
			ctx.reading = nil
			if err != nil {
				return nil, Transport(err)
			}
			return item, nil
		}
		dec = next
		if err != nil {
			if !iox.IsWouldBlock(err) {
				panic("codec: decoder returned a next state with a failure")
			}
			ctx.reading = dec
			return nil, err
		}
	}
}

// Write is the effect operation for encoding a value.
// Perform(Write{Encoder: e}) writes e to the Conn's writer.
type Write struct {
	kont.Phantom[struct{}]
	Encoder Encoder
}

// DispatchCodec resumes the pending encoder, or starts op.Encoder.
// Non-blocking: returns iox.ErrWouldBlock with the partial state kept in ctx.
func (op Write) DispatchCodec(ctx *connContext) (kont.Resumed, error) {
	enc := op.Encoder
	if ctx.writing != nil {
		enc = ctx.writing
	}
	for {
		next, n, err := enc.PollEncode(ctx.w)
		ctx.written += n
		if next == nil {
			ctx.writing = nil
			if err != nil {
				return nil, err
			}
			return struct{}{}, nil
		}
		enc = next
		if err != nil {
			if !iox.IsWouldBlock(err) {
				panic("codec: encoder returned a next state with a failure")
			}
			ctx.writing = enc
			return nil, err
		}
	}
}

// Close is the effect operation for ending the Conn's output.
// Perform(Close{}) closes the writer so the peer observes io.EOF.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchCodec closes the writer if it is an io.Closer. Never blocks.
func (Close) DispatchCodec(ctx *connContext) (kont.Resumed, error) {
	if cl, ok := ctx.w.(io.Closer); ok {
		if err := cl.Close(); err != nil {
			return nil, err
		}
	}
	return struct{}{}, nil
}
