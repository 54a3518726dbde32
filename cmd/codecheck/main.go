// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command codecheck runs randomized round trips of the codec combinators
// over in-memory non-blocking pipes with injected partial I/O, and exits
// non-zero if any decoded value or byte count disagrees.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

type cli struct {
	Rounds   int           `help:"Round trips per scenario." default:"200"`
	Capacity int           `help:"Pipe capacity in bytes." default:"16"`
	Seed     int64         `help:"Random seed; 0 derives one from the clock." default:"0"`
	Timeout  time.Duration `help:"Deadline for the whole run." default:"30s"`
	Parallel bool          `help:"Run encoder and decoder on separate goroutines."`
	Only     []string      `help:"Run only the named scenarios." placeholder:"NAME"`
	Verbose  int           `short:"v" type:"counter" help:"Log verbosity (-v info per round, -vv debug)."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("codecheck"),
		kong.Description("Round-trip checks for incremental codecs."),
		kong.UsageOnError(),
	)
	logger := newLogger(c.Verbose)
	kctx.FatalIfErrorf(c.run(logger))
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

func (c *cli) run(logger *slog.Logger) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	cfg := checkConfig{
		rounds:   c.Rounds,
		capacity: c.Capacity,
		seed:     seed,
		parallel: c.Parallel,
	}
	selected, err := selectScenarios(c.Only)
	if err != nil {
		return err
	}
	logger.Warn("codecheck starting", "seed", seed, "rounds", c.Rounds, "scenarios", len(selected))
	return check(ctx, logger, cfg, selected)
}
