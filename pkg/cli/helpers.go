/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"os"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/errors"
)

// readConfig reads the raw config document from disk.
func readConfig(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			"failed to read config file", err,
			map[string]any{"path": path})
	}
	return raw, nil
}

// resolveDestination picks the artifact destination: the --output flag
// wins, then the document's output.base64ConfigFile, then the canonical
// default.
func resolveDestination(flagValue string, cfg *compute.ComputeConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Output.Base64ConfigFile != "" {
		return cfg.Output.Base64ConfigFile
	}
	return compute.DefaultOutputFile
}
