// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codectest provides helpers for testing decoders and encoders:
// round-trip runners, transports injecting partial I/O and suspension,
// and checks for premature end of stream.
package codectest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/codec"
)

// Run drives enc into w and dec from r, interleaved on the calling
// goroutine, and returns the decoded item and whether the encoder wrote
// as many bytes as the decoder consumed.
//
// r and w are expected to be the two ends of one non-blocking transport.
// When the encoder finishes, w is closed if it is an io.Closer, so a
// decoder wanting more bytes fails instead of waiting forever. Likewise r
// is closed when the decoder finishes. An encoder then failing with
// io.ErrClosedPipe has surplus bytes: Run reports false, not an error.
func Run[T any](r io.Reader, w io.Writer, dec codec.Decoder[T], enc codec.Encoder) (T, bool, error) {
	item, c, err := run(r, w, dec, enc)
	return item, !c.surplus && c.written == c.read, err
}

// RunLen is like [Run] and additionally checks that the encoder wrote
// exactly the number of bytes it reported before the first step.
func RunLen[T any](r io.Reader, w io.Writer, dec codec.Decoder[T], enc codec.LenEncoder) (T, bool, error) {
	expected := enc.RemainingBytes()
	item, c, err := run(r, w, dec, enc)
	return item, !c.surplus && c.written == c.read && c.written == expected, err
}

// counts is what a round trip moved. surplus is set when the encoder
// had bytes left after the decoder finished.
type counts struct {
	written, read int
	surplus       bool
}

// surplusWrite reports whether err is an encoder running into the
// reader closed by a finished decoder.
func surplusWrite(decoded bool, err error) bool {
	return decoded && errors.Is(err, io.ErrClosedPipe)
}

func run[T any](r io.Reader, w io.Writer, dec codec.Decoder[T], enc codec.Encoder) (T, counts, error) {
	d := codec.NewDecoding(r, dec)
	e := codec.NewEncoding(w, enc)
	var item T
	var bo iox.Backoff
	for !d.Done() || !e.Done() {
		before := d.Read() + e.Written()
		if !e.Done() {
			_, _, err := e.Poll()
			switch {
			case err == nil, iox.IsWouldBlock(err):
			case surplusWrite(d.Done(), err):
				return item, counts{written: e.Written(), read: d.Read(), surplus: true}, nil
			default:
				return item, counts{written: e.Written(), read: d.Read()}, fmt.Errorf("codectest: encode: %w", err)
			}
			if e.Done() {
				closeWriter(w)
			}
		}
		if !d.Done() {
			_, v, _, err := d.Poll()
			switch {
			case err == nil:
				item = v
				closeReader(r)
			case !iox.IsWouldBlock(err):
				return item, counts{written: e.Written(), read: d.Read()}, fmt.Errorf("codectest: decode: %w", err)
			}
		}
		if d.Read()+e.Written() == before {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return item, counts{written: e.Written(), read: d.Read()}, nil
}

// RunParallel drives enc and dec on separate goroutines and reports the
// decoded item and whether written, read and, for a [codec.LenEncoder],
// the announced byte counts agree. The first failure cancels the other side.
// Surplus encoder bytes are reported as a mismatch, as in [Run].
func RunParallel[T any](ctx context.Context, r io.Reader, w io.Writer, dec codec.Decoder[T], enc codec.Encoder) (T, bool, error) {
	expected := -1
	if le, ok := enc.(codec.LenEncoder); ok {
		expected = le.RemainingBytes()
	}
	g, gctx := errgroup.WithContext(ctx)
	var (
		item          T
		written, read int
		decoded       atomix.Uint32
		surplus       bool
		once          sync.Once
		failure       error
	)
	// The first side to fail is recorded before it closes its end, so a
	// failure it provokes in the peer is never reported instead.
	fail := func(err error) {
		once.Do(func() { failure = err })
	}
	g.Go(func() error {
		_, n, err := codec.EncodeContext(gctx, w, enc)
		written = n
		if surplusWrite(decoded.Load() != 0, err) {
			surplus, err = true, nil
		}
		if err != nil {
			fail(fmt.Errorf("codectest: encode: %w", err))
		}
		closeWriter(w)
		return err
	})
	g.Go(func() error {
		_, v, n, err := codec.DecodeContext(gctx, r, dec)
		item, read = v, n
		if err != nil {
			fail(fmt.Errorf("codectest: decode: %w", err))
		} else {
			decoded.Store(1)
		}
		closeReader(r)
		return err
	})
	g.Wait()
	if failure != nil {
		return item, false, failure
	}
	ok := !surplus && written == read && (expected < 0 || written == expected)
	return item, ok, nil
}

// UnexpectedEOF reports whether decoding r with dec fails with a
// transport error caused by io.ErrUnexpectedEOF.
// r must eventually return data or an error; it is polled with backoff.
func UnexpectedEOF[T any](r io.Reader, dec codec.Decoder[T]) bool {
	_, _, _, err := codec.Decode(r, dec)
	return codec.IsTransport(err) && errors.Is(err, io.ErrUnexpectedEOF)
}

// WriteZero reports whether encoding enc into w fails with io.ErrShortWrite.
func WriteZero(w io.Writer, enc codec.Encoder) bool {
	_, _, err := codec.Encode(w, enc)
	return errors.Is(err, io.ErrShortWrite)
}

func closeWriter(w io.Writer) {
	if c, ok := w.(io.Closer); ok {
		c.Close()
	}
}

func closeReader(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}
