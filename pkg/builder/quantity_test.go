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
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

func TestBuildResourcesValid(t *testing.T) {
	cfg := baseConfig()

	req, err := BuildResources(cfg)
	require.NoError(t, err)

	cpu := req.Requests[corev1.ResourceCPU]
	assert.Equal(t, int64(500), cpu.MilliValue())

	mem := req.Limits[corev1.ResourceMemory]
	assert.Equal(t, resource.MustParse("1Gi"), mem)
}

func TestBuildResourcesEquivalentQuantities(t *testing.T) {
	cfg := baseConfig()
	cfg.DefaultResources.Limits.Memory = "2048Mi"
	first, err := BuildResources(cfg)
	require.NoError(t, err)

	cfg.DefaultResources.Limits.Memory = "2Gi"
	second, err := BuildResources(cfg)
	require.NoError(t, err)

	a := first.Limits[corev1.ResourceMemory]
	b := second.Limits[corev1.ResourceMemory]
	assert.Zero(t, a.Cmp(b))
}

func TestBuildResourcesInvalid(t *testing.T) {
	cfg := baseConfig()
	cfg.DefaultResources.Requests.CPU = "half a core"
	cfg.DefaultResources.Limits.Memory = "lots"

	_, err := BuildResources(cfg)
	require.Error(t, err)

	var qErr *InvalidQuantityError
	require.ErrorAs(t, err, &qErr)

	// Both bad fields are reported with their full paths.
	assert.Contains(t, err.Error(), "defaultResources.requests.cpu")
	assert.Contains(t, err.Error(), "defaultResources.limits.memory")
}

func TestBuildResourcesEmptyFields(t *testing.T) {
	cfg := baseConfig()
	cfg.DefaultResources = compute.ResourceSpec{}

	_, err := BuildResources(cfg)
	// Empty strings do not parse as quantities; the validator reports the
	// missing fields first in the full pipeline.
	assert.Error(t, err)
}

func TestBuildResourcesRequestsMayExceedLimits(t *testing.T) {
	cfg := baseConfig()
	cfg.DefaultResources.Requests.CPU = "4"
	cfg.DefaultResources.Limits.CPU = "1"

	_, err := BuildResources(cfg)
	assert.NoError(t, err)
}
