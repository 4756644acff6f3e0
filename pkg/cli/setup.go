/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/pipeline"
	"github.com/dataloop-ai/computectl/pkg/serializer"
	"github.com/dataloop-ai/computectl/pkg/submit"
)

func setupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "setup",
		EnableShellCompletion: true,
		Usage:                 "Encode a compute config and register it with the control plane",
		Description: `Run the full compute driver setup flow.

The config is validated, normalized, and encoded into the base64 driver
artifact. The artifact is written to its destination, then registered
with the control plane of the environment named in organization.env.
With --set-default, the new driver becomes the organization's default.

The cluster credentials in authentication.token are used as the bearer
token for the control-plane API.

# Examples

Encode and register a driver:
  computectl setup -c config.json

Register and make it the org default, migrating running services:
  computectl setup -c config.json --set-default --update-existing-services

Encode and write the artifact without registering:
  computectl setup -c config.json --skip-submit`,
		Flags: []cli.Flag{
			configFlag(),
			outputFlag(),
			kubeconfigFlag(),
			&cli.BoolFlag{
				Name:  "skip-submit",
				Usage: "Write the artifact but do not register it with the control plane",
			},
			&cli.BoolFlag{
				Name:  "set-default",
				Usage: "Make the new driver the organization's default compute driver",
			},
			&cli.BoolFlag{
				Name:  "update-existing-services",
				Usage: "Migrate running services to the new default driver (with --set-default)",
			},
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

			slog.Info("artifact ready",
				"cluster", cfg.Cluster.Name,
				"destination", artifact.Destination)

			if cmd.Bool("skip-submit") {
				return nil
			}

			env := cfg.Organization.Env
			if env == "" {
				env = compute.DefaultEnvironment
			}

			client := submit.New(env, submit.WithToken(cfg.Authentication.Token))

			driver, err := client.CreateCompute(ctx, cfg.Organization.OrgID, artifact.Encoded)
			if err != nil {
				return err
			}

			if cmd.Bool("set-default") {
				if err := client.SetDefaultDriver(ctx,
					cfg.Organization.OrgID, driver.ID,
					cmd.Bool("update-existing-services")); err != nil {
					return err
				}
			}

			slog.Info("compute driver setup completed",
				"org", cfg.Organization.OrgID,
				"env", env,
				"driver", driver.ID,
				"default", cmd.Bool("set-default"))
			return nil
		},
	}
}
