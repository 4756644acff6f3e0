/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))

	writeConfig(t, dir, "config.json", validConfig())

	bad := validConfig()
	bad.Cluster.KubernetesVersion = "1.20"
	writeConfig(t, filepath.Join(dir, "configs"), "config-old.json", bad)

	template := validConfig()
	template.Organization.OrgID = "{{org-id}}"
	writeConfig(t, filepath.Join(dir, "configs"), "config-template.json", template)

	outPath := filepath.Join(dir, "list.json")
	err := New().Run(t.Context(),
		[]string{"computectl", "list", "-d", dir, "-f", "json", "-o", outPath})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entries []ConfigEntry
	require.NoError(t, json.Unmarshal(raw, &entries))

	// The template is skipped; the valid and invalid configs are listed.
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Valid)
	assert.Zero(t, entries[0].Violations)
	assert.False(t, entries[1].Valid)
	assert.Equal(t, 1, entries[1].Violations)
	assert.Equal(t, "my-cluster", entries[0].Cluster)
}

func TestListCommandEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "list.json")

	err := New().Run(t.Context(),
		[]string{"computectl", "list", "-d", dir, "-f", "json", "-o", outPath})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entries []ConfigEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	assert.Empty(t, entries)
}

func TestDiscoverConfigs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	writeConfig(t, dir, "config.json", validConfig())
	writeConfig(t, filepath.Join(dir, "configs"), "config-prod.json", validConfig())
	writeConfig(t, filepath.Join(dir, "configs"), "other.json", validConfig())

	paths, err := discoverConfigs(dir)
	require.NoError(t, err)

	// other.json does not match the config-*.json pattern.
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "config.json"), paths[0])
	assert.Equal(t, filepath.Join(dir, "configs", "config-prod.json"), paths[1])
}
