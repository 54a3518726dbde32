// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/codec"
	"code.hybscloud.com/codec/codectest"
)

type checkConfig struct {
	rounds   int
	capacity int
	seed     int64
	parallel bool
}

// round is the environment of one round trip.
type round struct {
	ctx      context.Context
	rng      *rand.Rand
	r        io.Reader
	w        io.Writer
	parallel bool
}

// roundTrip runs dec against enc in the configured mode.
func roundTrip[T any](rd round, dec codec.Decoder[T], enc codec.LenEncoder) (T, bool, error) {
	if rd.parallel {
		return codectest.RunParallel(rd.ctx, rd.r, rd.w, dec, enc)
	}
	return codectest.RunLen(rd.r, rd.w, dec, enc)
}

// check runs every scenario on its own goroutine, each for cfg.rounds
// round trips, and returns the first failure.
func check(ctx context.Context, logger *slog.Logger, cfg checkConfig, scenarios []scenario) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sc := range scenarios {
		rng := rand.New(rand.NewSource(cfg.seed + int64(i)))
		g.Go(func() error {
			start := time.Now()
			for n := range cfg.rounds {
				if err := gctx.Err(); err != nil {
					return err
				}
				rd := newRound(gctx, rng, cfg)
				if err := sc.run(rd); err != nil {
					logger.Error("round trip failed", "scenario", sc.name, "round", n, "err", err)
					return fmt.Errorf("%s: round %d: %w", sc.name, n, err)
				}
				logger.Debug("round trip ok", "scenario", sc.name, "round", n)
			}
			logger.Info("scenario passed", "scenario", sc.name, "rounds", cfg.rounds, "elapsed", time.Since(start))
			return nil
		})
	}
	return g.Wait()
}

func newRound(ctx context.Context, rng *rand.Rand, cfg checkConfig) round {
	pr, pw := codec.NewPipe(cfg.capacity)
	readOps := codectest.Ops{}.Generate(rng, 32).Interface().(codectest.Ops)
	writeOps := codectest.Ops{}.Generate(rng, 32).Interface().(codectest.Ops)
	return round{
		ctx:      ctx,
		rng:      rng,
		r:        codectest.NewPartialReader(pr, readOps),
		w:        codectest.NewPartialWriter(pw, writeOps),
		parallel: cfg.parallel,
	}
}
