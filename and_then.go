// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "io"

// andThenDecoder runs first until it completes, then second.
// f is cleared once second has been built.
type andThenDecoder[T, U any] struct {
	first  Decoder[T]
	f      func(T) Decoder[U]
	second Decoder[U]
}

// AndThen returns a decoder that runs d and then the decoder f builds
// from d's item. f is called exactly once, when d completes; that step is
// reported as progress.
func AndThen[T, U any](d Decoder[T], f func(T) Decoder[U]) Decoder[U] {
	return andThenDecoder[T, U]{first: d, f: f}
}

func (a andThenDecoder[T, U]) PollDecode(r io.Reader) (U, Decoder[U], int, error) {
	var zero U
	if a.second == nil {
		item, next, n, err := a.first.PollDecode(r)
		switch {
		case next != nil:
			return zero, andThenDecoder[T, U]{first: next, f: a.f}, n, err
		case err != nil:
			return zero, nil, n, err
		}
		second := a.f(item)
		if second == nil {
			panic("codec: AndThen continuation returned a nil decoder")
		}
		return zero, andThenDecoder[T, U]{second: second}, n, nil
	}

	item, next, n, err := a.second.PollDecode(r)
	switch {
	case next != nil:
		return zero, andThenDecoder[T, U]{second: next}, n, err
	case err != nil:
		return zero, nil, n, err
	}
	return item, nil, n, nil
}
