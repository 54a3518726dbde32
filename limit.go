// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"io"
)

// LimitReader returns a reader that reads from r but stops with io.EOF
// after n bytes. iox.ErrWouldBlock from r is passed through.
func LimitReader(r io.Reader, n int) io.Reader {
	return &io.LimitedReader{R: r, N: int64(n)}
}

// LimitWriter returns a writer that writes to w but refuses to write more
// than n bytes in total. A write crossing the limit writes what fits and
// returns io.ErrShortWrite. iox.ErrWouldBlock from w is passed through.
func LimitWriter(w io.Writer, n int) io.Writer {
	return &limitedWriter{w: w, n: n}
}

type limitedWriter struct {
	w io.Writer
	n int
}

func (l *limitedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.n <= 0 {
		return 0, io.ErrShortWrite
	}
	short := false
	if len(p) > l.n {
		p = p[:l.n]
		short = true
	}
	n, err := l.w.Write(p)
	l.n -= n
	if err == nil && short {
		err = io.ErrShortWrite
	}
	return n, err
}
