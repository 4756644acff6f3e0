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
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/serializer"
	"github.com/dataloop-ai/computectl/pkg/validator"
)

// ConfigEntry summarizes one discovered config document.
type ConfigEntry struct {
	File       string              `json:"file" yaml:"file"`
	Cluster    string              `json:"cluster" yaml:"cluster"`
	Namespace  string              `json:"namespace" yaml:"namespace"`
	Env        compute.Environment `json:"env" yaml:"env"`
	OrgID      string              `json:"orgId" yaml:"orgId"`
	Valid      bool                `json:"valid" yaml:"valid"`
	Violations int                 `json:"violations" yaml:"violations"`
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List compute config documents in a directory",
		Description: `Discover compute config documents and summarize each one.

Looks for config.json in the directory plus config-*.json files under
its configs/ subdirectory. Unfilled templates (documents whose
organization.orgId still carries a placeholder) are skipped.

# Examples

List configs in the current directory:
  computectl list

List configs under a deployment directory, as JSON:
  computectl list -d ./clusters -f json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "Directory to scan for config documents",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			dir := cmd.String("dir")
			paths, err := discoverConfigs(dir)
			if err != nil {
				return err
			}

			v := validator.New()
			entries := make([]ConfigEntry, 0, len(paths))

			for _, path := range paths {
				raw, err := os.ReadFile(path)
				if err != nil {
					slog.Warn("skipping unreadable config", "path", path, "error", err)
					continue
				}

				cfg, err := compute.ParseConfig(raw)
				if err != nil {
					slog.Warn("skipping malformed config", "path", path, "error", err)
					continue
				}

				if validator.IsPlaceholder(cfg.Organization.OrgID) {
					slog.Debug("skipping template config", "path", path)
					continue
				}

				result, err := v.Validate(ctx, cfg)
				if err != nil {
					return err
				}

				env := cfg.Organization.Env
				if env == "" {
					env = compute.DefaultEnvironment
				}

				entries = append(entries, ConfigEntry{
					File:       path,
					Cluster:    cfg.Cluster.Name,
					Namespace:  cfg.Cluster.DefaultNamespace,
					Env:        env,
					OrgID:      cfg.Organization.OrgID,
					Valid:      !result.Failed(),
					Violations: result.Summary.Violations,
				})
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, entries); err != nil {
				return fmt.Errorf("failed to serialize config list: %w", err)
			}

			slog.Info("configs listed", "dir", dir, "found", len(entries))
			return nil
		},
	}
}

// discoverConfigs returns the config document paths under dir: config.json
// at the top level plus configs/config-*.json.
func discoverConfigs(dir string) ([]string, error) {
	var paths []string

	top := filepath.Join(dir, "config.json")
	if _, err := os.Stat(top); err == nil {
		paths = append(paths, top)
	}

	nested, err := filepath.Glob(filepath.Join(dir, "configs", "config-*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	paths = append(paths, nested...)

	return paths, nil
}
