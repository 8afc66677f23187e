package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mergington/activities/internal/smoke"
	"github.com/mergington/activities/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8000", "Base URL of the service")
		activity = flag.String("activity", "", "Activity to exercise (default: first in catalog)")
		email    = flag.String("email", "", "Email to enroll (default: generated)")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	runner := smoke.NewRunner(smoke.Config{
		BaseURL:  *baseURL,
		Activity: *activity,
		Email:    *email,
		Timeout:  *timeout,
		Verbose:  *verbose,
	})

	stats, err := runner.Run(ctx)
	if err != nil {
		logger.Get().Error(ctx, "smoke run failed",
			logger.Error(err),
			logger.Int("steps_completed", stats.StepsRun),
		)
		os.Exit(1)
	}

	logger.Get().Info(ctx, "smoke run passed",
		logger.Int("steps", stats.StepsRun),
		logger.Any("duration", stats.Duration),
	)
}
