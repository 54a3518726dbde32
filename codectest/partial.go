// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codectest

import (
	"fmt"
	"io"
	"math/rand"
	"reflect"

	"code.hybscloud.com/iox"
)

type opKind uint8

const (
	opUnlimited opKind = iota
	opLimited
	opWouldBlock
)

// PartialOp shapes a single Read or Write call of a partial transport.
type PartialOp struct {
	kind opKind
	n    int
}

var (
	// Unlimited passes the call through unchanged.
	Unlimited = PartialOp{kind: opUnlimited}
	// WouldBlock fails the call with iox.ErrWouldBlock without touching
	// the underlying transport.
	WouldBlock = PartialOp{kind: opWouldBlock}
)

// Limited caps the call at n bytes. n below 1 is treated as 1.
func Limited(n int) PartialOp {
	return PartialOp{kind: opLimited, n: max(n, 1)}
}

func (op PartialOp) String() string {
	switch op.kind {
	case opLimited:
		return fmt.Sprintf("Limited(%d)", op.n)
	case opWouldBlock:
		return "WouldBlock"
	}
	return "Unlimited"
}

// Ops is a sequence of PartialOps. It implements quick.Generator, so
// property tests can take arbitrary I/O schedules as arguments.
type Ops []PartialOp

// Generate returns a random schedule of up to size operations.
func (Ops) Generate(rand *rand.Rand, size int) reflect.Value {
	ops := make(Ops, rand.Intn(size+1))
	for i := range ops {
		switch rand.Intn(3) {
		case 0:
			ops[i] = Unlimited
		case 1:
			ops[i] = Limited(1 + rand.Intn(8))
		default:
			ops[i] = WouldBlock
		}
	}
	return reflect.ValueOf(ops)
}

// PartialReader applies one PartialOp per Read call to an underlying
// reader. Once the ops are used up, reads pass through.
type PartialReader struct {
	r   io.Reader
	ops Ops
}

// NewPartialReader returns a reader applying ops to r.
func NewPartialReader(r io.Reader, ops Ops) *PartialReader {
	return &PartialReader{r: r, ops: ops}
}

func (p *PartialReader) Read(b []byte) (int, error) {
	if len(p.ops) == 0 {
		return p.r.Read(b)
	}
	op := p.ops[0]
	p.ops = p.ops[1:]
	switch op.kind {
	case opWouldBlock:
		return 0, iox.ErrWouldBlock
	case opLimited:
		if op.n < len(b) {
			b = b[:op.n]
		}
	}
	return p.r.Read(b)
}

// Close closes the underlying reader if it is an io.Closer.
func (p *PartialReader) Close() error {
	if c, ok := p.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// PartialWriter applies one PartialOp per Write call to an underlying
// writer. Once the ops are used up, writes pass through.
type PartialWriter struct {
	w   io.Writer
	ops Ops
}

// NewPartialWriter returns a writer applying ops to w.
func NewPartialWriter(w io.Writer, ops Ops) *PartialWriter {
	return &PartialWriter{w: w, ops: ops}
}

// Write writes at most the op's limit. A limited short write reports
// iox.ErrWouldBlock, which keeps the io.Writer contract for short counts.
func (p *PartialWriter) Write(b []byte) (int, error) {
	if len(p.ops) == 0 {
		return p.w.Write(b)
	}
	op := p.ops[0]
	p.ops = p.ops[1:]
	switch op.kind {
	case opWouldBlock:
		return 0, iox.ErrWouldBlock
	case opLimited:
		if op.n < len(b) {
			n, err := p.w.Write(b[:op.n])
			if err == nil {
				err = iox.ErrWouldBlock
			}
			return n, err
		}
	}
	return p.w.Write(b)
}

// Close closes the underlying writer if it is an io.Closer.
func (p *PartialWriter) Close() error {
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
