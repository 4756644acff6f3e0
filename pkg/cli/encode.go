/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/pipeline"
	"github.com/dataloop-ai/computectl/pkg/serializer"
)

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		EnableShellCompletion: true,
		Usage:                 "Transform a compute config into the base64 driver artifact",
		Description: `Validate, normalize, and encode a compute config document.

The artifact is the base64 encoding of the canonical driver document.
Encoding is deterministic: the same input always produces byte-identical
output. The artifact is written only after encoding completed in full,
so a failed run never leaves a partial file behind.

# Examples

Encode a config, writing to the path named in output.base64ConfigFile:
  computectl encode -c config.json

Write the artifact to an explicit file:
  computectl encode -c config.json -o driver.b64

Print the artifact to stdout:
  computectl encode -c config.json -o -

Write the artifact into a Kubernetes ConfigMap:
  computectl encode -c config.json -o cm://dataloop/compute-driver`,
		Flags: []cli.Flag{
			configFlag(),
			outputFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := readConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			cfg, err := compute.ParseConfig(raw)
			if err != nil {
				return err
			}

			dest := resolveDestination(cmd.String("output"), cfg)

			if dest == "-" {
				p := pipeline.New()
				artifact, err := p.RunConfig(ctx, cfg)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, artifact.Encoded)
				return nil
			}

			sink, err := serializer.NewArtifactSink(dest,
				serializer.WithKubeconfig(cmd.String("kubeconfig")))
			if err != nil {
				return err
			}

			p := pipeline.New(pipeline.WithSink(sink))
			artifact, err := p.RunConfig(ctx, cfg)
			if err != nil {
				return err
			}

			slog.Info("artifact encoded",
				"cluster", cfg.Cluster.Name,
				"destination", artifact.Destination,
				"length", len(artifact.Encoded))
			return nil
		},
	}
}
