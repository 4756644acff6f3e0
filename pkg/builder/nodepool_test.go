/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

func TestBuildNodePoolsValid(t *testing.T) {
	cfg := baseConfig()

	pools, err := BuildNodePools(cfg)
	require.NoError(t, err)
	assert.Len(t, pools, 2)
}

func TestBuildNodePoolsNoDefault(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools[0].IsDLTypeDefault = false

	_, err := BuildNodePools(cfg)
	require.Error(t, err)

	var ndErr *NoDefaultPoolError
	assert.ErrorAs(t, err, &ndErr)
}

func TestBuildNodePoolsMultipleDefaults(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools[1].IsDLTypeDefault = true

	_, err := BuildNodePools(cfg)
	require.Error(t, err)

	// The error names every offending pool.
	var mdErr *MultipleDefaultPoolsError
	require.ErrorAs(t, err, &mdErr)
	assert.Equal(t, []string{"pool-cpu", "pool-gpu"}, mdErr.Pools)
}

func TestBuildNodePoolsDuplicateName(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools[1].Name = "pool-cpu"

	_, err := BuildNodePools(cfg)
	require.Error(t, err)

	var dupErr *DuplicatePoolNameError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "pool-cpu", dupErr.Name)
}

func TestBuildNodePoolsUnknownInstanceType(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools[1].DLTypes = []compute.InstanceType{"gpu-v100"}

	_, err := BuildNodePools(cfg)
	require.Error(t, err)

	var utErr *UnknownInstanceTypeError
	require.ErrorAs(t, err, &utErr)
	assert.Equal(t, "pool-gpu", utErr.Pool)
	assert.Equal(t, "gpu-v100", utErr.Token)
}

func TestBuildNodePoolsEmptyDLTypes(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools[1].DLTypes = nil

	_, err := BuildNodePools(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty dlTypes")
}

func TestBuildNodePoolsTolerations(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools[1].Tolerations = []corev1.Toleration{
		{Key: "nvidia.com/gpu", Operator: corev1.TolerationOpExists, Effect: corev1.TaintEffectNoSchedule},
	}

	_, err := BuildNodePools(cfg)
	assert.NoError(t, err)

	cfg.NodePools[1].Tolerations = []corev1.Toleration{
		{Key: "nvidia.com/gpu", Operator: "Maybe", Effect: "NoIdea"},
	}

	_, err = BuildNodePools(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid toleration operator")
	assert.Contains(t, err.Error(), "invalid toleration effect")
}

func TestBuildNodePoolsAccumulates(t *testing.T) {
	cfg := baseConfig()
	cfg.NodePools = []compute.NodePool{
		{Name: "a", DLTypes: []compute.InstanceType{"bogus"}},
		{Name: "a", DLTypes: nil},
	}

	_, err := BuildNodePools(cfg)
	require.Error(t, err)

	// Duplicate name, unknown type, empty dlTypes, and no default, all in
	// one batch.
	assert.Contains(t, err.Error(), "duplicate node pool name")
	assert.Contains(t, err.Error(), "unknown instance type")
	assert.Contains(t, err.Error(), "empty dlTypes")
	assert.Contains(t, err.Error(), "no node pool marked isDlTypeDefault")
}
