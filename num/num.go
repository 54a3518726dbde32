// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package num provides primitive leaf codecs: fixed-width integers and
// fixed-size byte strings.
//
// Decoders fail with a transport error wrapping io.ErrUnexpectedEOF when
// the reader ends before the value is complete.
package num

import (
	"encoding/binary"
	"io"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/iox"
)

// Integer is the set of fixed-width integer types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type intDecoder[T Integer] struct {
	order binary.ByteOrder
	buf   [8]byte
	size  int
	have  int
}

// Decode returns a decoder for a T in the given byte order.
func Decode[T Integer](order binary.ByteOrder) codec.Decoder[T] {
	var zero T
	return intDecoder[T]{order: order, size: binary.Size(zero)}
}

func (d intDecoder[T]) PollDecode(r io.Reader) (T, codec.Decoder[T], int, error) {
	var zero T
	n, err := r.Read(d.buf[d.have:d.size])
	d.have += n
	if d.have == d.size {
		return d.value(), nil, n, nil
	}
	next, err := readOutcome(n, err)
	if !next {
		return zero, nil, n, err
	}
	return zero, d, n, err
}

func (d intDecoder[T]) value() T {
	switch d.size {
	case 1:
		return T(d.buf[0])
	case 2:
		return T(d.order.Uint16(d.buf[:2]))
	case 4:
		return T(d.order.Uint32(d.buf[:4]))
	}
	return T(d.order.Uint64(d.buf[:8]))
}

type intEncoder struct {
	buf  [8]byte
	size int
	off  int
}

// Encode returns a length-aware encoder writing v in the given byte order.
func Encode[T Integer](order binary.ByteOrder, v T) codec.LenEncoder {
	e := intEncoder{size: binary.Size(v)}
	switch e.size {
	case 1:
		e.buf[0] = byte(v)
	case 2:
		order.PutUint16(e.buf[:2], uint16(v))
	case 4:
		order.PutUint32(e.buf[:4], uint32(v))
	default:
		order.PutUint64(e.buf[:8], uint64(v))
	}
	return e
}

func (e intEncoder) PollEncode(w io.Writer) (codec.Encoder, int, error) {
	n, err := w.Write(e.buf[e.off:e.size])
	e.off += n
	if e.off == e.size {
		return nil, n, nil
	}
	next, err := writeOutcome(n, err)
	if !next {
		return nil, n, err
	}
	return e, n, err
}

func (e intEncoder) RemainingBytes() int { return e.size - e.off }

// readOutcome classifies an incomplete read. next reports whether the
// decoder continues; err is nil for progress, iox.ErrWouldBlock for
// suspension, or the failure.
func readOutcome(n int, err error) (next bool, _ error) {
	switch {
	case err == nil:
		if n == 0 {
			// (0, nil) is no progress, not end of stream.
			return true, iox.ErrWouldBlock
		}
		return true, nil
	case iox.IsWouldBlock(err):
		if n > 0 {
			return true, nil
		}
		return true, iox.ErrWouldBlock
	case err == io.EOF:
		return false, codec.Transport(io.ErrUnexpectedEOF)
	}
	return false, codec.Transport(err)
}

// writeOutcome is the write-side counterpart of readOutcome.
func writeOutcome(n int, err error) (next bool, _ error) {
	switch {
	case err == nil:
		if n == 0 {
			return false, io.ErrShortWrite
		}
		return true, nil
	case iox.IsWouldBlock(err):
		if n > 0 {
			return true, nil
		}
		return true, iox.ErrWouldBlock
	}
	return false, err
}
