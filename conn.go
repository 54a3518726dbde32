// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"io"

	"code.hybscloud.com/kont"
)

// connContext holds the transport of a Conn and the codec state of the
// operation currently in flight. Operations on one Conn run strictly in
// sequence, so at most one of reading and writing is set.
type connContext struct {
	r       io.Reader
	w       io.Writer
	reading any // Decoder[T] of the pending Read
	writing Encoder
	read    int
	written int
}

// connDispatcher is the structural interface for codec operations.
// DispatchCodec is non-blocking: it returns iox.ErrWouldBlock when the
// transport cannot make progress, keeping partial progress in ctx.
type connDispatcher interface {
	DispatchCodec(ctx *connContext) (kont.Resumed, error)
}

// Conn is one side of a codec protocol: a reader, a writer, and the
// state of the codec operation in flight.
type Conn struct {
	ctx    connContext
	serial Serial
}

// NewConn returns a Conn reading from r and writing to w.
// Either may be nil if the protocol never uses it.
func NewConn(r io.Reader, w io.Writer) *Conn {
	return &Conn{ctx: connContext{r: r, w: w}, serial: nextSerial()}
}

// NewConnPair creates two Conns connected by a pair of in-memory pipes
// holding up to capacity bytes in each direction.
func NewConnPair(capacity int) (*Conn, *Conn) {
	abR, abW := NewPipe(capacity)
	baR, baW := NewPipe(capacity)
	s := nextSerial()
	a := &Conn{ctx: connContext{r: baR, w: abW}, serial: s}
	b := &Conn{ctx: connContext{r: abR, w: baW}, serial: s}
	return a, b
}

// Serial returns the serial number of the Conn.
// Both Conns of a pair share one serial.
func (c *Conn) Serial() Serial { return c.serial }

// Read returns the total number of bytes decoded on c.
func (c *Conn) Read() int { return c.ctx.read }

// Written returns the total number of bytes encoded on c.
func (c *Conn) Written() int { return c.ctx.written }

// Close closes the reader and the writer of c if they are io.Closers.
func (c *Conn) Close() error {
	var errs []error
	if cl, ok := c.ctx.w.(io.Closer); ok {
		errs = append(errs, cl.Close())
	}
	if cl, ok := c.ctx.r.(io.Closer); ok {
		errs = append(errs, cl.Close())
	}
	c.ctx.reading, c.ctx.writing = nil, nil
	return errors.Join(errs...)
}
