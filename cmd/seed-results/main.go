package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/devalpoteam/instascore-engine/internal/seedtool"
	"github.com/devalpoteam/instascore-engine/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumRows    = 0 // 0 means the full generated dataset
	defaultSeed       = 20240817
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTeamSize   = 3
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numRows  = flag.Int("rows", defaultNumRows, "Number of score rows to submit (0 = full dataset)")
		seed     = flag.Int64("seed", defaultSeed, "Seed for the deterministic dataset")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		teamSize = flag.Int("team", defaultTeamSize, "Contributing athlete count used when verifying team standings")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedtool.Config{
		BaseURL:  *baseURL,
		NumRows:  *numRows,
		Seed:     *seed,
		Workers:  *workers,
		TeamSize: *teamSize,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if err := seedtool.Run(ctx, config); err != nil {
		os.Stderr.WriteString("seed run failed: " + err.Error() + "\n")
		return
	}
}
