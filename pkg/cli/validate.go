/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dataloop-ai/computectl/pkg/pipeline"
	"github.com/dataloop-ai/computectl/pkg/serializer"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a compute config and report every violation",
		Description: `Run field-level validation against a compute config document.

Checks never short-circuit: the report lists every missing or malformed
field in the document, so a config can be fixed in one pass instead of
one error at a time.

# Examples

Validate the default config.json:
  computectl validate

Validate a specific file, result as JSON:
  computectl validate -c configs/config-prod.json -f json

Write the validation report to a file:
  computectl validate -c config.json -o report.yaml

Fail the command when any check fails (useful for CI):
  computectl validate -c config.json --fail-on-error`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any check fails",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			raw, err := readConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			p := pipeline.New()
			result, err := p.Validate(ctx, raw)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"checked", result.Summary.Checked,
				"violations", result.Summary.Violations,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Failed() {
				return fmt.Errorf("validation failed: %d violation(s)", result.Summary.Violations)
			}

			return nil
		},
	}
}
