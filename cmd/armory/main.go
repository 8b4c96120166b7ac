// Package main runs armory catalog queries from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	armorycmd "github.com/louisbranch/ordnance/internal/cmd/armory"
	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/platform/config"
)

func main() {
	cfg, err := armorycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ARMORY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := armorycmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Printf("%s: %v", cfg.Mode, err)
		config.Exitf("%s", apperrors.Localize(err, cfg.Locale))
	}
}
