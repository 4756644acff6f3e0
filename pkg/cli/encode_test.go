/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

func TestEncodeCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "config.json", validConfig())
	outPath := filepath.Join(dir, "driver.b64")

	err := New().Run(t.Context(),
		[]string{"computectl", "encode", "-c", cfgPath, "-o", outPath})
	require.NoError(t, err)

	artifact, err := os.ReadFile(outPath)
	require.NoError(t, err)

	decoded, err := compute.Decode(string(artifact))
	require.NoError(t, err)
	assert.Equal(t, "my-cluster", decoded.Config.Name)
	assert.Equal(t, testToken, decoded.Authentication.Token)
}

func TestEncodeCommandUsesDocumentDestination(t *testing.T) {
	dir := t.TempDir()
	cfg := validConfig()
	cfg.Output.Base64ConfigFile = filepath.Join(dir, "from-doc.b64")
	cfgPath := writeConfig(t, dir, "config.json", cfg)

	err := New().Run(t.Context(),
		[]string{"computectl", "encode", "-c", cfgPath})
	require.NoError(t, err)

	assert.FileExists(t, cfg.Output.Base64ConfigFile)
}

func TestEncodeCommandInvalidConfigWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := validConfig()
	cfg.Authentication.Token = "not-a-jwt"
	cfgPath := writeConfig(t, dir, "config.json", cfg)
	outPath := filepath.Join(dir, "driver.b64")

	err := New().Run(t.Context(),
		[]string{"computectl", "encode", "-c", cfgPath, "-o", outPath})
	require.Error(t, err)

	// No partial artifact is left behind.
	assert.NoFileExists(t, outPath)
}

func TestEncodeCommandKubeconfigReachesConfigMapSink(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "config.json", validConfig())
	missing := filepath.Join(dir, "kubeconfig")

	err := New().Run(t.Context(),
		[]string{"computectl", "encode", "-c", cfgPath,
			"-o", "cm://dataloop/compute-config", "--kubeconfig", missing})
	require.Error(t, err)

	// The failure cites the flag's path, so the flag value is what the
	// ConfigMap client was built from.
	assert.Contains(t, err.Error(), missing)
}

func TestEncodeCommandIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "config.json", validConfig())
	first := filepath.Join(dir, "a.b64")
	second := filepath.Join(dir, "b.b64")

	require.NoError(t, New().Run(t.Context(),
		[]string{"computectl", "encode", "-c", cfgPath, "-o", first}))
	require.NoError(t, New().Run(t.Context(),
		[]string{"computectl", "encode", "-c", cfgPath, "-o", second}))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
