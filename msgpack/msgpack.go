// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package msgpack provides MessagePack value codecs carried in frames
// (see package frame).
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/frame"
)

// Decode returns a decoder for one framed MessagePack value of type T.
// A payload that does not unmarshal into T fails with a data error.
func Decode[T any](opts ...frame.Option) codec.Decoder[T] {
	return codec.TryMap(frame.Decode(opts...), func(b []byte) (T, error) {
		var v T
		err := msgpack.Unmarshal(b, &v)
		return v, err
	})
}

// Encode marshals v and returns an encoder writing it as one frame.
func Encode(v any, opts ...frame.Option) (codec.LenEncoder, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	return frame.Encode(b, opts...)
}
