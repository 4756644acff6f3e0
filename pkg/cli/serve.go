/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dataloop-ai/computectl/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the validation service",
		Description: `Expose the config pipeline over HTTP.

Endpoints:
  POST /v1/validate   run field validation, return the violation report
  POST /v1/encode     run the full pipeline, return the base64 artifact
  GET  /health        liveness probe
  GET  /ready         readiness probe
  GET  /metrics       Prometheus metrics

The listen port defaults to 8080 and can be overridden with the PORT
environment variable.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, name, version)
		},
	}
}
