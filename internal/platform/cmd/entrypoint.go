// Package cmd holds the startup plumbing shared by the command-line tools.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/ordnance/internal/platform/config"
	"github.com/louisbranch/ordnance/internal/platform/otel"
	"github.com/louisbranch/ordnance/internal/platform/timeouts"
)

// Tool names used for telemetry resources and log prefixes.
const (
	ServiceArmory        = "armory"
	ServiceCatalogExport = "catalog-export"
)

// RunOptions tunes Run.
type RunOptions struct {
	ShutdownTimeout time.Duration
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. Flags registered with env-loaded
// defaults override the environment.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// Run configures tracing for tool and executes run under a root span.
func Run(ctx context.Context, tool string, run func(context.Context) error) error {
	return RunWithOptions(ctx, tool, RunOptions{}, run)
}

// RunWithOptions is Run with an explicit shutdown budget.
func RunWithOptions(ctx context.Context, tool string, options RunOptions, run func(context.Context) error) error {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return fmt.Errorf("tool name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, tool)
	if err != nil {
		return err
	}
	defer func() {
		timeout := options.ShutdownTimeout
		if timeout <= 0 {
			timeout = timeouts.Shutdown
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", tool, err)
		}
	}()

	ctx, span := otel.Tracer(tool).Start(ctx, tool+".run")
	defer span.End()
	if err := run(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
