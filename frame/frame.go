// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package frame provides length-prefixed frame codecs.
//
// Wire format: a 1-byte header followed by optional extended length bytes
// and then the payload. Let L be the payload length in bytes:
//   - 0 <= L <= 253: header[0] = L
//   - 254 <= L <= 65535: header[0] = 0xFE; next 2 bytes encode L
//   - 65536 <= L <= 2^56-1: header[0] = 0xFF; next 7 bytes encode L
//
// Extended lengths use the configured byte order. A payload decoder must
// consume exactly L bytes; see [codec.DecodeExact].
package frame

import (
	"errors"
	"math"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/num"
)

const (
	hdr16 = 0xFE
	hdr56 = 0xFF

	// MaxLength is the largest representable payload length.
	MaxLength = 1<<56 - 1
)

// ErrTooLong is reported for lengths above MaxLength or the read limit.
var ErrTooLong = errors.New("frame: payload too long")

// DecodeLength returns a decoder for a frame length header.
// A length above the read limit, or above math.MaxInt, fails with a data
// error wrapping ErrTooLong.
func DecodeLength(opts ...Option) codec.Decoder[uint64] {
	o := newOptions(opts)
	length := codec.AndThen(num.DecodeU8(), func(h uint8) codec.Decoder[uint64] {
		switch h {
		case hdr16:
			return codec.Map(num.Decode[uint16](o.ByteOrder), func(v uint16) uint64 { return uint64(v) })
		case hdr56:
			return codec.Map(num.Bytes(7), func(b []byte) uint64 { return uint56(o, b) })
		}
		return codec.Ready(uint64(h))
	})
	limit := min(o.readLimit(), uint64(math.MaxInt))
	return codec.TryMap(length, func(n uint64) (uint64, error) {
		if n > limit {
			return 0, ErrTooLong
		}
		return n, nil
	})
}

// EncodeLength returns an encoder for the length header of an n-byte payload.
func EncodeLength(n uint64, opts ...Option) (codec.LenEncoder, error) {
	o := newOptions(opts)
	switch {
	case n <= 253:
		return num.EncodeBytes([]byte{byte(n)}), nil
	case n <= 0xFFFF:
		b := make([]byte, 3)
		b[0] = hdr16
		o.ByteOrder.PutUint16(b[1:], uint16(n))
		return num.EncodeBytes(b), nil
	case n <= MaxLength:
		b := make([]byte, 8)
		b[0] = hdr56
		putUint56(o, b[1:], n)
		return num.EncodeBytes(b), nil
	}
	return nil, ErrTooLong
}

// Decode returns a decoder for one frame, producing its payload.
func Decode(opts ...Option) codec.Decoder[[]byte] {
	return codec.AndThen(DecodeLength(opts...), func(n uint64) codec.Decoder[[]byte] {
		return codec.DecodeExact(num.Bytes(int(n)), int(n))
	})
}

// DecodeWith returns a decoder for one frame whose payload is decoded by
// a decoder built with inner. The payload decoder must consume exactly the
// framed length: finishing early fails with a data error carrying a
// [*codec.ExactError], and reading past the frame observes io.EOF.
func DecodeWith[T any](inner func() codec.Decoder[T], opts ...Option) codec.Decoder[T] {
	return codec.AndThen(DecodeLength(opts...), func(n uint64) codec.Decoder[T] {
		return codec.DecodeExact(inner(), int(n))
	})
}

// Encode returns an encoder writing payload as one frame.
// payload must not be modified until the encoder is done.
func Encode(payload []byte, opts ...Option) (codec.LenEncoder, error) {
	return EncodeWith(num.EncodeBytes(payload), opts...)
}

// EncodeWith returns an encoder writing the output of enc as one frame.
// The frame length is enc's remaining byte count.
func EncodeWith(enc codec.LenEncoder, opts ...Option) (codec.LenEncoder, error) {
	hdr, err := EncodeLength(uint64(enc.RemainingBytes()), opts...)
	if err != nil {
		return nil, err
	}
	return codec.EncodeChainLen(hdr, enc), nil
}

func uint56(o Options, b []byte) uint64 {
	var buf [8]byte
	if littleEndian(o.ByteOrder) {
		copy(buf[:7], b)
	} else {
		copy(buf[1:], b)
	}
	return o.ByteOrder.Uint64(buf[:])
}

func putUint56(o Options, b []byte, v uint64) {
	var buf [8]byte
	o.ByteOrder.PutUint64(buf[:], v)
	if littleEndian(o.ByteOrder) {
		copy(b, buf[:7])
	} else {
		copy(b, buf[1:])
	}
}
