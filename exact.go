// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"io"
)

type exactDecoder[T any] struct {
	dec    Decoder[T]
	target int
	read   int
}

// DecodeExact returns a decoder that runs d and fails unless d completes
// after consuming exactly target bytes.
//
// d sees a view of the transport capped at the bytes left in the budget,
// so it can never read past target; a decoder that needs more observes
// io.EOF. If d completes early the failure is a data error carrying an
// [*ExactError] with the produced item. Data failures of d are wrapped
// in an [*ExactError]; transport failures are returned as they are.
func DecodeExact[T any](d Decoder[T], target int) Decoder[T] {
	if target < 0 {
		panic("codec: negative DecodeExact target")
	}
	return exactDecoder[T]{dec: d, target: target}
}

func (e exactDecoder[T]) PollDecode(r io.Reader) (T, Decoder[T], int, error) {
	var zero T
	item, next, n, err := e.dec.PollDecode(LimitReader(r, e.target-e.read))
	read := e.read + n
	if read > e.target {
		panic("codec: decoder read past its DecodeExact budget")
	}
	if next != nil {
		return zero, exactDecoder[T]{dec: next, target: e.target, read: read}, n, err
	}
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) && de.Kind == DataError {
			return zero, nil, n, &DecodeError{Kind: DataError, Err: &ExactError[T]{Read: read, Err: de.Err}}
		}
		return zero, nil, n, err
	}
	if read < e.target {
		return zero, nil, n, &DecodeError{Kind: DataError, Err: &ExactError[T]{Item: item, Read: read}}
	}
	return item, nil, n, nil
}
