// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msgpack_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/codectest"
	"code.hybscloud.com/codec/frame"
	"code.hybscloud.com/codec/msgpack"
)

type record struct {
	ID    uint64            `msgpack:"id"`
	Name  string            `msgpack:"name"`
	Tags  []string          `msgpack:"tags"`
	Attrs map[string]string `msgpack:"attrs"`
}

func TestRoundTrip(t *testing.T) {
	want := record{
		ID:    7,
		Name:  "sensor",
		Tags:  []string{"a", "b"},
		Attrs: map[string]string{"unit": "celsius"},
	}
	enc, err := msgpack.Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	r, w := codec.NewPipe(8)
	got, ok, err := codectest.RunLen(r, w, msgpack.Decode[record](), enc)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.ID != want.ID || got.Name != want.Name || len(got.Tags) != 2 || got.Attrs["unit"] != "celsius" {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSequence(t *testing.T) {
	var buf bytes.Buffer
	for _, v := range []string{"one", "two", "three"} {
		enc, err := msgpack.Encode(v)
		if err != nil {
			t.Fatal(err)
		}
		codec.Encode(&buf, enc)
	}
	r := bytes.NewReader(buf.Bytes())
	for _, want := range []string{"one", "two", "three"} {
		_, got, _, err := codec.Decode(r, msgpack.Decode[string]())
		if err != nil || got != want {
			t.Fatalf("got (%q, %v), want %q", got, err, want)
		}
	}
}

func TestTypeMismatchIsDataError(t *testing.T) {
	enc, err := msgpack.Encode("not a number")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	codec.Encode(&buf, enc)
	_, _, _, err = codec.Decode(bytes.NewReader(buf.Bytes()), msgpack.Decode[int]())
	if !codec.IsData(err) {
		t.Fatalf("got %v, want data error", err)
	}
}

func TestFrameOptions(t *testing.T) {
	enc, err := msgpack.Encode(bytes.Repeat([]byte{1}, 300))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	codec.Encode(&buf, enc)
	_, _, _, err = codec.Decode(bytes.NewReader(buf.Bytes()), msgpack.Decode[[]byte](frame.WithReadLimit(64)))
	if !codec.IsData(err) {
		t.Fatalf("got %v, want data error for an oversized frame", err)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if _, err := msgpack.Encode(make(chan int)); err == nil {
		t.Fatal("expected error for a channel value")
	}
}
