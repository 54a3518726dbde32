// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "io"

// chainDecoder is in its first stage while second is set, and in its
// second stage once first has completed and firstItem is captured.
type chainDecoder[A, B any] struct {
	first     Decoder[A]
	second    Decoder[B]
	firstItem A
	inSecond  bool
}

// Chain returns a decoder that runs a and then b, producing both items.
// b is not polled before a is done. The step in which a completes is
// reported as progress; the next poll starts on b.
func Chain[A, B any](a Decoder[A], b Decoder[B]) Decoder[Pair[A, B]] {
	return chainDecoder[A, B]{first: a, second: b}
}

func (c chainDecoder[A, B]) PollDecode(r io.Reader) (Pair[A, B], Decoder[Pair[A, B]], int, error) {
	var zero Pair[A, B]
	if !c.inSecond {
		item, next, n, err := c.first.PollDecode(r)
		switch {
		case next != nil:
			return zero, chainDecoder[A, B]{first: next, second: c.second}, n, err
		case err != nil:
			return zero, nil, n, err
		}
		return zero, chainDecoder[A, B]{second: c.second, firstItem: item, inSecond: true}, n, nil
	}

	item, next, n, err := c.second.PollDecode(r)
	switch {
	case next != nil:
		return zero, chainDecoder[A, B]{second: next, firstItem: c.firstItem, inSecond: true}, n, err
	case err != nil:
		return zero, nil, n, err
	}
	return Pair[A, B]{First: c.firstItem, Second: item}, nil, n, nil
}

// chainEncoder is in its first stage while first is non-nil.
type chainEncoder struct {
	first  Encoder
	second Encoder
}

// lenChainEncoder is a chainEncoder over two LenEncoders.
type lenChainEncoder struct {
	chainEncoder
}

// EncodeChain returns an encoder that writes a and then b.
// The step in which a completes is reported as progress.
//
// The result is a [LenEncoder] if and only if both a and b are.
func EncodeChain(a, b Encoder) Encoder {
	c := chainEncoder{first: a, second: b}
	if _, ok := a.(LenEncoder); ok {
		if _, ok := b.(LenEncoder); ok {
			return lenChainEncoder{c}
		}
	}
	return c
}

// EncodeChainLen is [EncodeChain] for two length-aware encoders.
func EncodeChainLen(a, b LenEncoder) LenEncoder {
	return lenChainEncoder{chainEncoder{first: a, second: b}}
}

// step polls the current stage. more reports whether next must be polled again.
func (c chainEncoder) step(w io.Writer) (next chainEncoder, more bool, n int, err error) {
	if c.first != nil {
		enc, n, err := c.first.PollEncode(w)
		switch {
		case enc != nil:
			return chainEncoder{first: enc, second: c.second}, true, n, err
		case err != nil:
			return chainEncoder{}, false, n, err
		}
		return chainEncoder{second: c.second}, true, n, nil
	}

	enc, n, err := c.second.PollEncode(w)
	if enc == nil {
		return chainEncoder{}, false, n, err
	}
	return chainEncoder{second: enc}, true, n, err
}

func (c chainEncoder) PollEncode(w io.Writer) (Encoder, int, error) {
	next, more, n, err := c.step(w)
	if !more {
		return nil, n, err
	}
	return next, n, err
}

func (c lenChainEncoder) PollEncode(w io.Writer) (Encoder, int, error) {
	next, more, n, err := c.step(w)
	if !more {
		return nil, n, err
	}
	return lenChainEncoder{next}, n, err
}

// RemainingBytes returns the bytes left in both stages while the first
// stage is running, and the second stage's remainder afterwards.
func (c lenChainEncoder) RemainingBytes() int {
	if c.first != nil {
		return remaining(c.first) + remaining(c.second)
	}
	return remaining(c.second)
}
