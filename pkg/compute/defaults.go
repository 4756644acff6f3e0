/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"
)

// Canonical defaults applied by the normalizer. These mirror the values
// the control-plane assumes when a field is absent, so the encoded artifact
// is always fully populated.
const (
	DefaultServiceAccountName = "faas"
	DefaultRegistryDomain     = "hub.dataloop.ai"
	DefaultRegistryFolder     = "customerhub"
	DefaultOutputFile         = "base64_config.txt"
)

// WithDefaults returns an equivalent document in which every
// optional-with-default field is present with its canonical value.
// Explicitly supplied values are never overwritten. The receiver is not
// modified: the volumes slice is copied before per-volume defaulting, and
// the remaining slices and maps are shared but never mutated afterwards.
func (c ComputeConfig) WithDefaults() ComputeConfig {
	if c.Organization.Env == "" {
		c.Organization.Env = DefaultEnvironment
	}
	if c.Cluster.ServiceAccountName == "" {
		c.Cluster.ServiceAccountName = DefaultServiceAccountName
	}
	if c.Registry.Domain == "" {
		c.Registry.Domain = DefaultRegistryDomain
	}
	if c.Registry.FaasFolder == "" {
		c.Registry.FaasFolder = DefaultRegistryFolder
	}
	if c.Registry.BootstrapFolder == "" {
		c.Registry.BootstrapFolder = DefaultRegistryFolder
	}
	if c.Network.EnvironmentVariables == nil {
		c.Network.EnvironmentVariables = []corev1.EnvVar{}
	}
	if c.SecurityContext == nil {
		c.SecurityContext = map[string]any{}
	}
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}
	// Copy before defaulting readOnly so the receiver's slice is untouched.
	vols := make([]Volume, len(c.Volumes))
	copy(vols, c.Volumes)
	c.Volumes = vols
	for i := range c.Volumes {
		if c.Volumes[i].ReadOnly == nil {
			c.Volumes[i].ReadOnly = ptr.To(false)
		}
	}
	if c.Output.Base64ConfigFile == "" {
		c.Output.Base64ConfigFile = DefaultOutputFile
	}
	return c
}
