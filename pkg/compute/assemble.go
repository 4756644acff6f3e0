/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	"github.com/hashicorp/go-multierror"
	corev1 "k8s.io/api/core/v1"
)

// Assemble composes the normalized document and the sub-resource builder
// outputs into one immutable DriverConfig. Each builder output occupies a
// disjoint key path; no coercion happens between them.
//
// When builder error batches are present, Assemble merges them all and
// fails once with the combined list, mirroring the field validator's
// accumulate-then-fail policy. No DriverConfig is produced in that case.
func Assemble(
	cfg *ComputeConfig,
	volumes []Volume,
	nodePools []NodePool,
	resources corev1.ResourceRequirements,
	securityContext map[string]any,
	batches ...error,
) (*DriverConfig, error) {
	var errs *multierror.Error
	for _, batch := range batches {
		if batch != nil {
			errs = multierror.Append(errs, batch)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &DriverConfig{
		Authentication: DriverAuthentication{
			CA:    cfg.Authentication.CA,
			Token: cfg.Authentication.Token,
		},
		Config: DriverClusterConfig{
			Endpoint:          cfg.Cluster.Endpoint,
			KubernetesVersion: cfg.Cluster.KubernetesVersion,
			Name:              cfg.Cluster.Name,
			NodePools:         nodePools,
			Metadata:          cfg.Metadata,
			Settings: DriverSettings{
				DefaultNamespace: cfg.Cluster.DefaultNamespace,
			},
			DeploymentConfiguration: DeploymentConfiguration{
				Volumes:              volumes,
				ServiceAccountName:   cfg.Cluster.ServiceAccountName,
				SecurityContext:      securityContext,
				Registry:             cfg.Registry,
				DefaultResources:     resources,
				InternalRequestsURL:  cfg.Network.InternalRequestsURL,
				EnvironmentVariables: cfg.Network.EnvironmentVariables,
			},
			Plugins:  cfg.Plugins,
			Provider: cfg.Cluster.Provider,
		},
	}, nil
}
