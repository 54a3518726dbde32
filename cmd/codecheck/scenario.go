// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/frame"
	"code.hybscloud.com/codec/msgpack"
	"code.hybscloud.com/codec/num"
)

type scenario struct {
	name string
	run  func(rd round) error
}

var scenarios = []scenario{
	{name: "pair", run: checkPair},
	{name: "chain", run: checkChain},
	{name: "map", run: checkMap},
	{name: "frame", run: checkFrame},
	{name: "exact-early", run: checkExactEarly},
	{name: "msgpack", run: checkMsgpack},
}

func selectScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 {
		return scenarios, nil
	}
	var out []scenario
	for _, name := range names {
		i := slices.IndexFunc(scenarios, func(sc scenario) bool { return sc.name == name })
		if i < 0 {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		out = append(out, scenarios[i])
	}
	return out, nil
}

var errMismatch = errors.New("byte counts disagree")

// checkPair round-trips the fixed pair (-7, 42), 12 bytes on the wire.
func checkPair(rd round) error {
	enc := codec.EncodeChainLen(num.EncodeI32(-7), num.EncodeU64(42))
	got, ok, err := roundTrip(rd, codec.Chain(num.DecodeI32(), num.DecodeU64()), enc)
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	if got.First != -7 || got.Second != 42 {
		return fmt.Errorf("decoded (%d, %d), want (-7, 42)", got.First, got.Second)
	}
	return nil
}

func checkChain(rd round) error {
	a, b := rd.rng.Int31()-rd.rng.Int31(), rd.rng.Uint64()
	enc := codec.EncodeChainLen(num.EncodeI32(a), num.EncodeU64(b))
	dec := codec.Chain(num.DecodeI32(), num.DecodeU64())
	got, ok, err := roundTrip(rd, dec, enc)
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	if got.First != a || got.Second != b {
		return fmt.Errorf("decoded (%d, %d), want (%d, %d)", got.First, got.Second, a, b)
	}
	return nil
}

func checkMap(rd round) error {
	v := uint16(rd.rng.Intn(1 << 16))
	dec := codec.Map(num.DecodeU16(), func(x uint16) int { return int(x) * 3 })
	got, ok, err := roundTrip(rd, dec, num.EncodeU16(v))
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	if got != int(v)*3 {
		return fmt.Errorf("mapped %d, want %d", got, int(v)*3)
	}
	return nil
}

func checkFrame(rd round) error {
	payload := make([]byte, rd.rng.Intn(600))
	rd.rng.Read(payload)
	enc, err := frame.Encode(payload)
	if err != nil {
		return err
	}
	got, ok, err := roundTrip(rd, frame.Decode(), enc)
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	if !bytes.Equal(got, payload) {
		return fmt.Errorf("payload of %d bytes differs", len(payload))
	}
	return nil
}

// checkExactEarly frames eight bytes but decodes only a uint32 from them.
func checkExactEarly(rd round) error {
	enc, err := frame.EncodeWith(codec.EncodeChainLen(num.EncodeU32(7), num.EncodeU32(9)))
	if err != nil {
		return err
	}
	_, _, err = roundTrip(rd, frame.DecodeWith(num.DecodeU32), enc)
	var xe *codec.ExactError[uint32]
	if !errors.As(err, &xe) || !xe.Early() {
		return fmt.Errorf("got %v, want an early DecodeExact failure", err)
	}
	if xe.Item != 7 || xe.Read != 4 {
		return fmt.Errorf("early failure carries (%d, %d), want (7, 4)", xe.Item, xe.Read)
	}
	return nil
}

type sample struct {
	ID    uint64            `msgpack:"id"`
	Name  string            `msgpack:"name"`
	Attrs map[string]string `msgpack:"attrs"`
}

func checkMsgpack(rd round) error {
	want := sample{
		ID:    rd.rng.Uint64(),
		Name:  fmt.Sprintf("unit-%d", rd.rng.Intn(1000)),
		Attrs: map[string]string{"k": fmt.Sprint(rd.rng.Int())},
	}
	enc, err := msgpack.Encode(want)
	if err != nil {
		return err
	}
	got, ok, err := roundTrip(rd, msgpack.Decode[sample](), enc)
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	if got.ID != want.ID || got.Name != want.Name || got.Attrs["k"] != want.Attrs["k"] {
		return fmt.Errorf("decoded %+v, want %+v", got, want)
	}
	return nil
}
