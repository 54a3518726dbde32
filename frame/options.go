// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import "encoding/binary"

// DefaultReadLimit is the read limit used when Options.ReadLimit is zero.
const DefaultReadLimit = 64 << 10

// Options configure frame codecs.
type Options struct {
	// ByteOrder of the extended length bytes. Default: big endian.
	ByteOrder binary.ByteOrder
	// ReadLimit is the largest accepted payload length when decoding.
	// Zero means DefaultReadLimit.
	ReadLimit uint64
}

// Option mutates Options.
type Option func(*Options)

// WithByteOrder sets the byte order of extended lengths.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.ByteOrder = order }
}

// WithReadLimit rejects decoded lengths above n with ErrTooLong.
// Pass MaxLength to accept every representable length.
func WithReadLimit(n uint64) Option {
	return func(o *Options) { o.ReadLimit = n }
}

func newOptions(opts []Option) Options {
	o := Options{ByteOrder: binary.BigEndian}
	for _, fn := range opts {
		fn(&o)
	}
	if o.ByteOrder == nil {
		o.ByteOrder = binary.BigEndian
	}
	return o
}

func (o Options) readLimit() uint64 {
	if o.ReadLimit == 0 {
		return DefaultReadLimit
	}
	return o.ReadLimit
}

// littleEndian reports whether order puts the low byte first.
func littleEndian(order binary.ByteOrder) bool {
	var b [2]byte
	order.PutUint16(b[:], 1)
	return b[0] == 1
}
