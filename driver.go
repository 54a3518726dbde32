// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"context"
	"io"

	"code.hybscloud.com/iox"
)

// Decoding is a decode run in progress. It owns the reader and the
// current decoder state until the run completes.
type Decoding[R io.Reader, T any] struct {
	r    R
	dec  Decoder[T]
	read int
	done bool
}

// NewDecoding starts a decode run of d over r.
func NewDecoding[R io.Reader, T any](r R, d Decoder[T]) *Decoding[R, T] {
	return &Decoding[R, T]{r: r, dec: d}
}

// Poll resumes the decoder until it completes, fails, or suspends.
//
// On completion it returns the reader, the item and the total number of
// bytes consumed by the run. On failure the error is a [*DecodeError].
// When the reader is not ready, Poll returns iox.ErrWouldBlock and the
// run may be polled again later; the byte count is the total so far.
// Polling a completed run panics.
func (d *Decoding[R, T]) Poll() (R, T, int, error) {
	if d.done {
		panic("codec: poll after completion")
	}
	var zero T
	for {
		item, next, n, err := d.dec.PollDecode(d.r)
		d.read += n
		if next == nil {
			d.done = true
			d.dec = nil
			if err != nil {
				return d.r, zero, d.read, Transport(err)
			}
			return d.r, item, d.read, nil
		}
		d.dec = next
		if err != nil {
			if !iox.IsWouldBlock(err) {
				panic("codec: decoder returned a next state with a failure")
			}
			return d.r, zero, d.read, err
		}
	}
}

// Read returns the number of bytes consumed so far.
func (d *Decoding[R, T]) Read() int { return d.read }

// Done reports whether the run has completed or failed.
func (d *Decoding[R, T]) Done() bool { return d.done }

// Encoding is an encode run in progress. It owns the writer and the
// current encoder state until the run completes.
type Encoding[W io.Writer] struct {
	w       W
	enc     Encoder
	written int
	done    bool
}

// NewEncoding starts an encode run of e into w.
func NewEncoding[W io.Writer](w W, e Encoder) *Encoding[W] {
	return &Encoding[W]{w: w, enc: e}
}

// Poll resumes the encoder until it completes, fails, or suspends.
// It mirrors [Decoding.Poll]; failures are the writer's errors.
func (e *Encoding[W]) Poll() (W, int, error) {
	if e.done {
		panic("codec: poll after completion")
	}
	for {
		next, n, err := e.enc.PollEncode(e.w)
		e.written += n
		if next == nil {
			e.done = true
			e.enc = nil
			return e.w, e.written, err
		}
		e.enc = next
		if err != nil {
			if !iox.IsWouldBlock(err) {
				panic("codec: encoder returned a next state with a failure")
			}
			return e.w, e.written, err
		}
	}
}

// Written returns the number of bytes written so far.
func (e *Encoding[W]) Written() int { return e.written }

// Done reports whether the run has completed or failed.
func (e *Encoding[W]) Done() bool { return e.done }

// RemainingBytes returns the bytes the encoder still has to write.
// It panics if the encoder is not a [LenEncoder].
func (e *Encoding[W]) RemainingBytes() int {
	if e.done {
		return 0
	}
	return remaining(e.enc)
}

// Decode runs d over r to completion, waiting past iox.ErrWouldBlock
// with adaptive backoff (iox.Backoff). It returns the reader together
// with the item and the total number of bytes consumed.
func Decode[R io.Reader, T any](r R, d Decoder[T]) (R, T, int, error) {
	return DecodeContext(context.Background(), r, d)
}

// DecodeContext is like [Decode] but stops waiting when ctx is done,
// returning ctx.Err(). The reader may then hold a partially consumed unit.
func DecodeContext[R io.Reader, T any](ctx context.Context, r R, d Decoder[T]) (R, T, int, error) {
	run := NewDecoding(r, d)
	var bo iox.Backoff
	last := 0
	for {
		r, item, n, err := run.Poll()
		if !iox.IsWouldBlock(err) {
			return r, item, n, err
		}
		if err := ctx.Err(); err != nil {
			return r, item, n, err
		}
		if n > last {
			last = n
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}

// Encode runs e into w to completion, waiting past iox.ErrWouldBlock
// with adaptive backoff (iox.Backoff). It returns the writer together
// with the total number of bytes written.
func Encode[W io.Writer](w W, e Encoder) (W, int, error) {
	return EncodeContext(context.Background(), w, e)
}

// EncodeContext is like [Encode] but stops waiting when ctx is done,
// returning ctx.Err().
func EncodeContext[W io.Writer](ctx context.Context, w W, e Encoder) (W, int, error) {
	run := NewEncoding(w, e)
	var bo iox.Backoff
	last := 0
	for {
		w, n, err := run.Poll()
		if !iox.IsWouldBlock(err) {
			return w, n, err
		}
		if err := ctx.Err(); err != nil {
			return w, n, err
		}
		if n > last {
			last = n
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}
