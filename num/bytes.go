// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package num

import (
	"io"
	"slices"

	"code.hybscloud.com/codec"
)

// bytesDecoder reads want bytes into buf, growing it as they arrive.
// States of one run share the backing array, so a superseded state must
// not be polled.
type bytesDecoder struct {
	buf  []byte
	want int
}

// minGrow is the smallest buffer growth step.
const minGrow = 512

// Bytes returns a decoder reading exactly n raw bytes. Memory is
// allocated as bytes arrive, not up front.
func Bytes(n int) codec.Decoder[[]byte] {
	if n < 0 {
		panic("num: negative byte count")
	}
	return bytesDecoder{buf: []byte{}, want: n}
}

func (d bytesDecoder) PollDecode(r io.Reader) ([]byte, codec.Decoder[[]byte], int, error) {
	if len(d.buf) == d.want {
		return d.buf, nil, 0, nil
	}
	if len(d.buf) == cap(d.buf) {
		d.buf = slices.Grow(d.buf, min(d.want-len(d.buf), max(len(d.buf), minGrow)))
	}
	n, err := r.Read(d.buf[len(d.buf):min(cap(d.buf), d.want)])
	d.buf = d.buf[:len(d.buf)+n]
	if len(d.buf) == d.want {
		return d.buf, nil, n, nil
	}
	next, err := readOutcome(n, err)
	if !next {
		return nil, nil, n, err
	}
	return nil, d, n, err
}

type bytesEncoder struct {
	b   []byte
	off int
}

// EncodeBytes returns a length-aware encoder writing b as is.
// b must not be modified until the encoder is done.
func EncodeBytes(b []byte) codec.LenEncoder {
	return bytesEncoder{b: b}
}

func (e bytesEncoder) PollEncode(w io.Writer) (codec.Encoder, int, error) {
	if e.off == len(e.b) {
		return nil, 0, nil
	}
	n, err := w.Write(e.b[e.off:])
	e.off += n
	if e.off == len(e.b) {
		return nil, n, nil
	}
	next, err := writeOutcome(n, err)
	if !next {
		return nil, n, err
	}
	return e, n, err
}

func (e bytesEncoder) RemainingBytes() int { return len(e.b) - e.off }
