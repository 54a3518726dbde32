// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec provides incremental, suspend/resume-capable decoders and
// encoders over non-blocking byte transports, and combinators composing
// them into pipelines.
//
// A codec value is the remaining work of one unit. Each poll performs one
// bounded step against the transport and returns a new value for the next
// step instead of modifying the old one. Suspension is an ordinary result:
// a transport that is not ready returns [code.hybscloud.com/iox.ErrWouldBlock]
// and the codec hands back its state to be polled again later.
//
// # Architecture
//
//   - Contract: [Decoder], [Encoder] and [LenEncoder]. Done, progress,
//     suspension and failure are encoded in the (item, next, n, err) results.
//   - Combinators: [Map], [TryMap], [Chain], [EncodeChain], [AndThen] and
//     [DecodeExact]. Sub-steps run strictly in order; a stage that finishes
//     is reported as progress and the next stage starts on the next poll.
//   - Errors: decode failures are [*DecodeError] values, either transport
//     or data failures. [DecodeExact] reports budget violations as
//     [*ExactError].
//   - Drivers: [Decoding] and [Encoding] own the transport for one run and
//     accumulate byte counts; [Decode] and [Encode] wait across suspensions
//     with adaptive backoff.
//   - Transport: [NewPipe] is an in-memory non-blocking pipe backed by a
//     lock-free SPSC ring ([code.hybscloud.com/lfq]); [LimitReader] and
//     [LimitWriter] cap a transport.
//
// # Protocols
//
// Several units on one connection compose as algebraic effects on
// [code.hybscloud.com/kont]: [ReadBind], [WriteThen] and [CloseDone] in
// Cont-world, [ExprReadBind], [ExprWriteThen] and [ExprCloseDone] in
// Expr-world. [Step] and [Advance] evaluate one effect at a time for a
// proactor loop; [Exec] and [Run] wait past boundaries.
//
// # Example
//
//	r, w := codec.NewPipe(16)
//	enc := codec.EncodeChain(num.EncodeI32(-7), num.EncodeU64(42))
//	dec := codec.Chain(num.DecodeI32(), num.DecodeU64())
//	go codec.Encode(w, enc)
//	_, pair, n, err := codec.Decode(r, dec)
//	// pair == codec.Pair[int32, uint64]{First: -7, Second: 42}, n == 12
package codec
