// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package num

import (
	"encoding/binary"

	"code.hybscloud.com/codec"
)

// Big-endian decoders.

func DecodeU8() codec.Decoder[uint8]   { return Decode[uint8](binary.BigEndian) }
func DecodeI8() codec.Decoder[int8]    { return Decode[int8](binary.BigEndian) }
func DecodeU16() codec.Decoder[uint16] { return Decode[uint16](binary.BigEndian) }
func DecodeI16() codec.Decoder[int16]  { return Decode[int16](binary.BigEndian) }
func DecodeU32() codec.Decoder[uint32] { return Decode[uint32](binary.BigEndian) }
func DecodeI32() codec.Decoder[int32]  { return Decode[int32](binary.BigEndian) }
func DecodeU64() codec.Decoder[uint64] { return Decode[uint64](binary.BigEndian) }
func DecodeI64() codec.Decoder[int64]  { return Decode[int64](binary.BigEndian) }

// Big-endian encoders.

func EncodeU8(v uint8) codec.LenEncoder   { return Encode(binary.BigEndian, v) }
func EncodeI8(v int8) codec.LenEncoder    { return Encode(binary.BigEndian, v) }
func EncodeU16(v uint16) codec.LenEncoder { return Encode(binary.BigEndian, v) }
func EncodeI16(v int16) codec.LenEncoder  { return Encode(binary.BigEndian, v) }
func EncodeU32(v uint32) codec.LenEncoder { return Encode(binary.BigEndian, v) }
func EncodeI32(v int32) codec.LenEncoder  { return Encode(binary.BigEndian, v) }
func EncodeU64(v uint64) codec.LenEncoder { return Encode(binary.BigEndian, v) }
func EncodeI64(v int64) codec.LenEncoder  { return Encode(binary.BigEndian, v) }

// Little-endian decoders.

func DecodeU16LE() codec.Decoder[uint16] { return Decode[uint16](binary.LittleEndian) }
func DecodeI16LE() codec.Decoder[int16]  { return Decode[int16](binary.LittleEndian) }
func DecodeU32LE() codec.Decoder[uint32] { return Decode[uint32](binary.LittleEndian) }
func DecodeI32LE() codec.Decoder[int32]  { return Decode[int32](binary.LittleEndian) }
func DecodeU64LE() codec.Decoder[uint64] { return Decode[uint64](binary.LittleEndian) }
func DecodeI64LE() codec.Decoder[int64]  { return Decode[int64](binary.LittleEndian) }

// Little-endian encoders.

func EncodeU16LE(v uint16) codec.LenEncoder { return Encode(binary.LittleEndian, v) }
func EncodeI16LE(v int16) codec.LenEncoder  { return Encode(binary.LittleEndian, v) }
func EncodeU32LE(v uint32) codec.LenEncoder { return Encode(binary.LittleEndian, v) }
func EncodeI32LE(v int32) codec.LenEncoder  { return Encode(binary.LittleEndian, v) }
func EncodeU64LE(v uint64) codec.LenEncoder { return Encode(binary.LittleEndian, v) }
func EncodeI64LE(v int64) codec.LenEncoder  { return Encode(binary.LittleEndian, v) }

// DecodeNative returns a decoder for a T in the host byte order.
func DecodeNative[T Integer]() codec.Decoder[T] {
	return Decode[T](binary.NativeEndian)
}

// EncodeNative returns an encoder writing v in the host byte order.
func EncodeNative[T Integer](v T) codec.LenEncoder {
	return Encode(binary.NativeEndian, v)
}
