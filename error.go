// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure.
type ErrorKind uint8

const (
	// TransportError means the underlying transport failed.
	TransportError ErrorKind = iota
	// DataError means the bytes read were invalid, or a byte budget was violated.
	DataError
)

func (k ErrorKind) String() string {
	switch k {
	case TransportError:
		return "transport"
	case DataError:
		return "data"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// DecodeError is the failure reported by a decoder.
type DecodeError struct {
	Kind ErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	return "codec: " + e.Kind.String() + " error: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Transport wraps err as a transport failure.
// A *DecodeError is returned unchanged.
func Transport(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Kind: TransportError, Err: err}
}

// Data wraps err as a data failure.
// A *DecodeError is returned unchanged.
func Data(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Kind: DataError, Err: err}
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == TransportError
}

// IsData reports whether err is a data failure.
func IsData(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == DataError
}

// ExactError is the data failure of [DecodeExact].
//
// If Err is nil the inner decoder finished early: it produced Item after
// reading only Read bytes. Otherwise Err is the inner decoder's data failure.
type ExactError[T any] struct {
	Item T
	Read int
	Err  error
}

// Early reports whether the inner decoder finished before its byte budget.
func (e *ExactError[T]) Early() bool { return e.Err == nil }

func (e *ExactError[T]) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("decoder finished early after reading %d bytes", e.Read)
	}
	return "decode exact inner error: " + e.Err.Error()
}

func (e *ExactError[T]) Unwrap() error { return e.Err }
