/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentGatewayURL(t *testing.T) {
	tests := []struct {
		env  Environment
		want string
	}{
		{EnvProd, "https://gate.dataloop.ai/api/v1"},
		{EnvRC, "https://rc-gate.dataloop.ai/api/v1"},
		{EnvDev, "https://dev-gate.dataloop.ai/api/v1"},
		{EnvNewDev, "https://new-dev-gate.dataloop.ai/api/v1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.env.GatewayURL())
	}
}

func TestEnvironmentIsValid(t *testing.T) {
	for _, env := range Environments() {
		assert.True(t, env.IsValid())
	}
	assert.False(t, Environment("staging").IsValid())
	assert.False(t, Environment("").IsValid())
}

func TestProviderIsValid(t *testing.T) {
	for _, p := range Providers() {
		assert.True(t, p.IsValid())
	}
	assert.False(t, Provider("openstack").IsValid())
}

func TestInstanceTypeVocabulary(t *testing.T) {
	assert.True(t, InstanceRegularXS.IsValid())
	assert.True(t, InstanceGPUA1004GM.IsValid())
	assert.False(t, InstanceType("regular-xxl").IsValid())
	assert.False(t, InstanceType("").IsValid())

	types := InstanceTypes()
	assert.Len(t, types, 13)
	assert.IsIncreasing(t, types)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"cluster":{"name":"c1"}}`))
	assert.NoError(t, err)
	assert.Equal(t, "c1", cfg.Cluster.Name)

	_, err = ParseConfig([]byte(`{"cluster": "not an object"}`))
	assert.Error(t, err)
}

func TestPluginNames(t *testing.T) {
	cfg := validConfig()
	names := cfg.PluginNames()
	assert.True(t, names[PluginMonitoring])
	assert.True(t, names[PluginScaler])
	assert.False(t, names["unknown"])
}
