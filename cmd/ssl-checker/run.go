// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/ssl-checker/src/cli"
	"github.com/H0llyW00dzZ/ssl-checker/src/logger"
	verpkg "github.com/H0llyW00dzZ/ssl-checker/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Printf("Error: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		// serve and mcp shut down on cancellation; give them a moment
		select {
		case err := <-done:
			if err == nil {
				return
			}
		case <-time.After(6 * time.Second):
		}
		log.SetOutput(os.Stderr)
		log.Println("Operation cancelled by signal. Exiting...")
		os.Exit(130)
	}
}
