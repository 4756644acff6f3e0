/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import "sort"

// Environment identifies the control-plane environment the compute driver
// is registered against.
type Environment string

const (
	EnvProd   Environment = "prod"
	EnvRC     Environment = "rc"
	EnvDev    Environment = "dev"
	EnvNewDev Environment = "new-dev"

	// DefaultEnvironment is used when organization.env is omitted.
	DefaultEnvironment = EnvRC
)

// IsValid reports whether the environment is a known control-plane
// environment.
func (e Environment) IsValid() bool {
	switch e {
	case EnvProd, EnvRC, EnvDev, EnvNewDev:
		return true
	default:
		return false
	}
}

// GatewayURL returns the API gateway base URL for the environment.
func (e Environment) GatewayURL() string {
	switch e {
	case EnvProd:
		return "https://gate.dataloop.ai/api/v1"
	case EnvDev:
		return "https://dev-gate.dataloop.ai/api/v1"
	case EnvNewDev:
		return "https://new-dev-gate.dataloop.ai/api/v1"
	default:
		return "https://rc-gate.dataloop.ai/api/v1"
	}
}

// Environments returns the known environments in stable order.
func Environments() []Environment {
	return []Environment{EnvProd, EnvRC, EnvDev, EnvNewDev}
}

// Provider identifies the managed Kubernetes provider of the cluster.
type Provider string

const (
	ProviderAWS   Provider = "aws"
	ProviderGCP   Provider = "gcp"
	ProviderAzure Provider = "azure"
)

// IsValid reports whether the provider is supported.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderGCP, ProviderAzure:
		return true
	default:
		return false
	}
}

// Providers returns the supported providers in stable order.
func Providers() []Provider {
	return []Provider{ProviderAWS, ProviderGCP, ProviderAzure}
}

// InstanceType is one token of the closed instance-type vocabulary a node
// pool can serve. The vocabulary mirrors the pod templates known to the
// FaaS scheduler; unknown tokens are rejected at validation time.
type InstanceType string

const (
	InstanceRegularXS  InstanceType = "regular-xs"
	InstanceRegularS   InstanceType = "regular-s"
	InstanceRegularM   InstanceType = "regular-m"
	InstanceRegularL   InstanceType = "regular-l"
	InstanceHighmemXS  InstanceType = "highmem-xs"
	InstanceHighmemS   InstanceType = "highmem-s"
	InstanceHighmemM   InstanceType = "highmem-m"
	InstanceHighmemL   InstanceType = "highmem-l"
	InstanceGPUT4      InstanceType = "gpu-t4"
	InstanceGPUT4M     InstanceType = "gpu-t4-m"
	InstanceGPUA100S   InstanceType = "gpu-a100-s"
	InstanceGPUA1004G  InstanceType = "gpu-a100-4g"
	InstanceGPUA1004GM InstanceType = "gpu-a100-4g-m"
)

var instanceTypes = map[InstanceType]bool{
	InstanceRegularXS:  true,
	InstanceRegularS:   true,
	InstanceRegularM:   true,
	InstanceRegularL:   true,
	InstanceHighmemXS:  true,
	InstanceHighmemS:   true,
	InstanceHighmemM:   true,
	InstanceHighmemL:   true,
	InstanceGPUT4:      true,
	InstanceGPUT4M:     true,
	InstanceGPUA100S:   true,
	InstanceGPUA1004G:  true,
	InstanceGPUA1004GM: true,
}

// IsValid reports whether the token belongs to the instance-type vocabulary.
func (t InstanceType) IsValid() bool {
	return instanceTypes[t]
}

// InstanceTypes returns the full vocabulary sorted alphabetically, for
// error messages and help text.
func InstanceTypes() []string {
	out := make([]string, 0, len(instanceTypes))
	for t := range instanceTypes {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}

// Mandatory plugin names every compute config must enable.
const (
	PluginMonitoring = "monitoring"
	PluginScaler     = "scaler"
)

// MandatoryPlugins returns the plugin names required in every config.
func MandatoryPlugins() []string {
	return []string{PluginMonitoring, PluginScaler}
}

// ServeAgentServiceTypes are the allowed values for the optional
// metadata.serveAgentServiceType field.
var ServeAgentServiceTypes = []string{"ClusterIP", "LoadBalancer"}
