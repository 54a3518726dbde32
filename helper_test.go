// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/kont"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/codectest"
	"code.hybscloud.com/codec/frame"
)

var errBoom = errors.New("boom")

// execExpr drives a protocol to completion on c via the Step+Advance loop.
// Retries on iox.ErrWouldBlock (peer not ready yet).
func execExpr[R any](c *codec.Conn, protocol kont.Expr[R]) kont.Either[error, R] {
	result, susp := codec.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = codec.Advance(c, susp)
		if err != nil {
			continue
		}
	}
	return result
}

// partial returns a reader over data applying ops.
func partial(data []byte, ops ...codectest.PartialOp) io.Reader {
	return codectest.NewPartialReader(bytes.NewReader(data), ops)
}

// countingDecoder counts the polls of the wrapped decoder.
type countingDecoder[T any] struct {
	polls *int
	dec   codec.Decoder[T]
}

func (c countingDecoder[T]) PollDecode(r io.Reader) (T, codec.Decoder[T], int, error) {
	*c.polls++
	item, next, n, err := c.dec.PollDecode(r)
	if next != nil {
		return item, countingDecoder[T]{polls: c.polls, dec: next}, n, err
	}
	return item, nil, n, err
}

// errReader fails every read with err.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// plainEncoder is an Encoder that does not know its length.
type plainEncoder struct{ b []byte }

func (e plainEncoder) PollEncode(w io.Writer) (codec.Encoder, int, error) {
	n, err := w.Write(e.b)
	return nil, n, err
}

// right returns the Right value of e or fails the test with its Left.
func right[R any](t testing.TB, e kont.Either[error, R]) R {
	t.Helper()
	if err, ok := e.GetLeft(); ok {
		t.Fatalf("expected Right, got Left: %v", err)
	}
	v, _ := e.GetRight()
	return v
}

// frameOf encodes s as one frame.
func frameOf(s string) codec.LenEncoder {
	enc, err := frame.Encode([]byte(s))
	if err != nil {
		panic(err)
	}
	return enc
}
