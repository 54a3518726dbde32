// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultPipeCapacity is the ring size used by [NewPipe] for a
// non-positive capacity.
const DefaultPipeCapacity = 64

// pipe is the shared state of a reader/writer pair in a single
// allocation. The ring is a single-producer single-consumer bounded queue.
type pipe struct {
	ring    lfq.SPSC[byte]
	rclosed atomix.Uint32
	wclosed atomix.Uint32
	serial  Serial
}

// PipeReader is the reading half of an in-memory non-blocking pipe.
// It must be used by a single goroutine.
type PipeReader struct {
	p *pipe
}

// PipeWriter is the writing half of an in-memory non-blocking pipe.
// It must be used by a single goroutine.
type PipeWriter struct {
	p *pipe
}

// NewPipe creates a connected in-memory byte pipe holding up to capacity
// unread bytes.
//
// The pipe never blocks: Read returns iox.ErrWouldBlock when no bytes are
// buffered, and Write returns the bytes accepted so far together with
// iox.ErrWouldBlock when the ring is full. Reader and writer may live on
// different goroutines.
func NewPipe(capacity int) (*PipeReader, *PipeWriter) {
	if capacity <= 0 {
		capacity = DefaultPipeCapacity
	}
	p := &pipe{serial: nextSerial()}
	p.ring.Init(capacity)
	return &PipeReader{p: p}, &PipeWriter{p: p}
}

// Read reads buffered bytes into b.
// It returns io.EOF once the writer is closed and the ring is drained.
func (r *PipeReader) Read(b []byte) (int, error) {
	if r.p.rclosed.Load() != 0 {
		return 0, io.ErrClosedPipe
	}
	if len(b) == 0 {
		return 0, nil
	}
	// Observe close before draining so bytes enqueued ahead of Close are
	// never mistaken for end of stream.
	closed := r.p.wclosed.Load() != 0
	n := 0
	for n < len(b) {
		v, err := r.p.ring.Dequeue()
		if err != nil {
			break
		}
		b[n] = v
		n++
	}
	if n > 0 {
		return n, nil
	}
	if closed {
		return 0, io.EOF
	}
	return 0, iox.ErrWouldBlock
}

// Close closes the reader; subsequent writes fail with io.ErrClosedPipe.
func (r *PipeReader) Close() error {
	r.p.rclosed.Add(1)
	return nil
}

// Serial returns the serial number of the pipe.
func (r *PipeReader) Serial() Serial { return r.p.serial }

// Write enqueues as much of b as fits.
// A short write returns iox.ErrWouldBlock; the count is real progress.
func (w *PipeWriter) Write(b []byte) (int, error) {
	if w.p.wclosed.Load() != 0 || w.p.rclosed.Load() != 0 {
		return 0, io.ErrClosedPipe
	}
	n := 0
	for n < len(b) {
		if err := w.p.ring.Enqueue(&b[n]); err != nil {
			return n, iox.ErrWouldBlock
		}
		n++
	}
	return n, nil
}

// Close closes the writer. The reader sees io.EOF after the remaining
// bytes are drained.
func (w *PipeWriter) Close() error {
	w.p.wclosed.Add(1)
	return nil
}

// Serial returns the serial number of the pipe.
func (w *PipeWriter) Serial() Serial { return w.p.serial }
