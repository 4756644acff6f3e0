/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the computectl command tree: setup, encode,
// validate, and list. Commands are thin wrappers around pkg/pipeline and
// pkg/submit; all domain logic lives in those packages so it stays
// testable without a terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/dataloop-ai/computectl/pkg/logging"
)

const (
	name           = "computectl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags used across commands. Constructors, not vars: flags carry
// parse state, so each command gets its own instance.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.json",
		Usage:   "Path to the compute config JSON document",
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "yaml",
		Usage:   "Output format: json or yaml",
	}
}

func kubeconfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "kubeconfig",
		Usage: "Path to kubeconfig (used for cm:// artifact destinations)",
	}
}

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "Dataloop compute driver configuration tooling",
		Description: `computectl validates operator-authored compute configs, transforms them
into the control-plane driver document, and emits the base64 artifact
used to register a Kubernetes cluster as a FaaS compute driver.

Typical flow:

  computectl validate -c config.json      check the config, report all violations
  computectl encode   -c config.json      produce the base64 artifact
  computectl setup    -c config.json      encode, write the artifact, and register it`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			setupCmd(),
			encodeCmd(),
			validateCmd(),
			listCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the root command. Called by main.main(); SIGINT/SIGTERM
// cancel the command context for graceful shutdown.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
