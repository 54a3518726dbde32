// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codectest_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/codectest"
	"code.hybscloud.com/codec/num"
)

func TestRunLen(t *testing.T) {
	r, w := codec.NewPipe(4)
	enc := codec.EncodeChainLen(num.EncodeU32(1), num.EncodeU64(2))
	got, ok, err := codectest.RunLen(r, w, codec.Chain(num.DecodeU32(), num.DecodeU64()), enc)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.First != 1 || got.Second != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestRunCountsMismatch(t *testing.T) {
	// The decoder stops after 2 of the 4 bytes written.
	r, w := codec.NewPipe(8)
	_, ok, err := codectest.Run(r, w, num.DecodeU16(), num.EncodeU32(5))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if ok {
		t.Fatal("surplus bytes not reported")
	}
}

// misreport claims more bytes than it writes.
type misreport struct{ codec.LenEncoder }

func (m misreport) RemainingBytes() int { return m.LenEncoder.RemainingBytes() + 1 }

func TestRunLenDetectsWrongLength(t *testing.T) {
	r, w := codec.NewPipe(8)
	_, ok, err := codectest.RunLen(r, w, num.DecodeU16(), misreport{num.EncodeU16(1)})
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v, want a length mismatch", ok, err)
	}
}

func TestRunDecodeFailure(t *testing.T) {
	r, w := codec.NewPipe(8)
	_, _, err := codectest.Run(r, w, num.DecodeU32(), num.EncodeU16(5))
	if err == nil || !strings.HasPrefix(err.Error(), "codectest: decode:") {
		t.Fatalf("got %v, want decode failure", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v, want io.ErrUnexpectedEOF in chain", err)
	}
}

func TestRunEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := codectest.Run(bytes.NewReader(nil), codec.LimitWriter(&buf, 1), num.DecodeU16(), num.EncodeU16(5))
	if err == nil || !strings.HasPrefix(err.Error(), "codectest: encode:") {
		t.Fatalf("got %v, want encode failure", err)
	}
}

func TestRunParallel(t *testing.T) {
	skipRace(t)
	r, w := codec.NewPipe(4)
	payload := []byte("a longer payload than the pipe holds")
	got, ok, err := codectest.RunParallel(context.Background(), r, w, num.Bytes(len(payload)), num.EncodeBytes(payload))
	if err != nil || !ok || !bytes.Equal(got, payload) {
		t.Fatalf("got (%q, %v, %v)", got, ok, err)
	}
}

func TestRunParallelReportsDecodeFirst(t *testing.T) {
	skipRace(t)
	r, w := codec.NewPipe(4)
	errReject := errors.New("reject")
	dec := codec.TryMap(num.DecodeU8(), func(uint8) (uint8, error) { return 0, errReject })
	_, _, err := codectest.RunParallel(context.Background(), r, w, dec, num.EncodeBytes(make([]byte, 64)))
	if !errors.Is(err, errReject) {
		t.Fatalf("got %v, want the decoder's failure", err)
	}
}

func TestRunParallelCanceled(t *testing.T) {
	skipRace(t)
	// Nothing ever moves between the two pipes.
	r, _ := codec.NewPipe(4)
	_, w := codec.NewPipe(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := codectest.RunParallel(ctx, r, w, num.Bytes(1024), num.EncodeBytes(make([]byte, 1024)))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

// plain writes its bytes without announcing a length.
type plain []byte

func (p plain) PollEncode(w io.Writer) (codec.Encoder, int, error) {
	n, err := w.Write(p)
	switch {
	case n == len(p):
		return nil, n, nil
	case err == nil || iox.IsWouldBlock(err):
		return p[n:], n, err
	}
	return nil, n, err
}

func TestRunParallelPlainChain(t *testing.T) {
	skipRace(t)
	r, w := codec.NewPipe(4)
	enc := codec.EncodeChain(plain{0, 1}, plain{0, 2})
	if _, ok := enc.(codec.LenEncoder); ok {
		t.Fatal("chain of plain encoders claims a length")
	}
	dec := codec.Chain(num.DecodeU16(), num.DecodeU16())
	got, ok, err := codectest.RunParallel(context.Background(), r, w, dec, enc)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.First != 1 || got.Second != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestRunSurplusIsMismatch(t *testing.T) {
	// The encoder fills the pipe and is cut off by the finished decoder.
	for range 16 {
		r, w := codec.NewPipe(4)
		got, ok, err := codectest.Run(r, w, num.DecodeU16(), num.EncodeBytes(make([]byte, 64)))
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if ok || got != 0 {
			t.Fatalf("got (%d, %v), want a mismatch", got, ok)
		}
	}
}

func TestRunParallelSurplusIsMismatch(t *testing.T) {
	skipRace(t)
	for range 16 {
		r, w := codec.NewPipe(4)
		_, ok, err := codectest.RunParallel(context.Background(), r, w, num.DecodeU16(), num.EncodeBytes(make([]byte, 64)))
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if ok {
			t.Fatal("surplus bytes not reported")
		}
	}
}

func TestPartialReader(t *testing.T) {
	ops := codectest.Ops{codectest.Limited(2), codectest.WouldBlock, codectest.Unlimited}
	r := codectest.NewPartialReader(strings.NewReader("abcdef"), ops)
	buf := make([]byte, 8)

	if n, err := r.Read(buf); n != 2 || err != nil {
		t.Fatalf("limited read got (%d, %v), want (2, nil)", n, err)
	}
	if n, err := r.Read(buf); n != 0 || !iox.IsWouldBlock(err) {
		t.Fatalf("blocked read got (%d, %v), want (0, ErrWouldBlock)", n, err)
	}
	if n, err := r.Read(buf); n != 4 || err != nil || string(buf[:n]) != "cdef" {
		t.Fatalf("unlimited read got (%q, %v)", buf[:n], err)
	}
}

func TestPartialWriter(t *testing.T) {
	var buf bytes.Buffer
	w := codectest.NewPartialWriter(&buf, codectest.Ops{codectest.WouldBlock, codectest.Limited(3), codectest.Limited(9)})

	if n, err := w.Write([]byte("abcdef")); n != 0 || !iox.IsWouldBlock(err) {
		t.Fatalf("blocked write got (%d, %v)", n, err)
	}
	if n, err := w.Write([]byte("abcdef")); n != 3 || !iox.IsWouldBlock(err) {
		t.Fatalf("short write got (%d, %v), want (3, ErrWouldBlock)", n, err)
	}
	if n, err := w.Write([]byte("def")); n != 3 || err != nil {
		t.Fatalf("write within limit got (%d, %v), want (3, nil)", n, err)
	}
	if buf.String() != "abcdef" {
		t.Fatalf("buffer got %q", buf.String())
	}
}

func TestPartialClose(t *testing.T) {
	pr, pw := codec.NewPipe(4)
	w := codectest.NewPartialWriter(pw, nil)
	w.Write([]byte{1})
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	r := codectest.NewPartialReader(pr, nil)
	buf := make([]byte, 4)
	if n, err := r.Read(buf); n != 1 || err != nil {
		t.Fatalf("read got (%d, %v), want (1, nil)", n, err)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("read after close got %v, want io.EOF", err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := pw.Write([]byte{2}); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("write after reader close got %v, want io.ErrClosedPipe", err)
	}
}

func TestLimitedMinimum(t *testing.T) {
	if got := codectest.Limited(0).String(); got != "Limited(1)" {
		t.Fatalf("got %s, want Limited(1)", got)
	}
	if codectest.Unlimited.String() != "Unlimited" || codectest.WouldBlock.String() != "WouldBlock" {
		t.Fatal("unexpected op names")
	}
}

func TestOpsGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	check := func(ops codectest.Ops) bool {
		for _, op := range ops {
			s := op.String()
			if s != "Unlimited" && s != "WouldBlock" && !strings.HasPrefix(s, "Limited(") {
				return false
			}
		}
		return len(ops) <= 50
	}
	if err := quick.Check(check, &quick.Config{Rand: rng, MaxCount: 50}); err != nil {
		t.Error(err)
	}
}
