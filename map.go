// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "io"

type mapDecoder[T, U any] struct {
	dec Decoder[T]
	f   func(T) U
}

// Map returns a decoder that runs d and passes its item through f.
// f is called once, when d completes.
func Map[T, U any](d Decoder[T], f func(T) U) Decoder[U] {
	return mapDecoder[T, U]{dec: d, f: f}
}

func (m mapDecoder[T, U]) PollDecode(r io.Reader) (U, Decoder[U], int, error) {
	var zero U
	item, next, n, err := m.dec.PollDecode(r)
	if next != nil {
		return zero, mapDecoder[T, U]{dec: next, f: m.f}, n, err
	}
	if err != nil {
		return zero, nil, n, err
	}
	return m.f(item), nil, n, nil
}

type tryMapDecoder[T, U any] struct {
	dec Decoder[T]
	f   func(T) (U, error)
}

// TryMap is like [Map] but f may reject the item.
// A non-nil error from f fails the decode with a data error.
func TryMap[T, U any](d Decoder[T], f func(T) (U, error)) Decoder[U] {
	return tryMapDecoder[T, U]{dec: d, f: f}
}

func (m tryMapDecoder[T, U]) PollDecode(r io.Reader) (U, Decoder[U], int, error) {
	var zero U
	item, next, n, err := m.dec.PollDecode(r)
	if next != nil {
		return zero, tryMapDecoder[T, U]{dec: next, f: m.f}, n, err
	}
	if err != nil {
		return zero, nil, n, err
	}
	u, err := m.f(item)
	if err != nil {
		return zero, nil, n, Data(err)
	}
	return u, nil, n, nil
}
