/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	corev1 "k8s.io/api/core/v1"
)

// DriverConfig is the transport document the control-plane API consumes to
// register a compute driver. Field order of these structs is the canonical
// key order of the encoded artifact; do not reorder fields.
type DriverConfig struct {
	Authentication DriverAuthentication `json:"authentication"`
	Config         DriverClusterConfig  `json:"config"`
}

// DriverAuthentication carries the cluster credentials.
type DriverAuthentication struct {
	CA    string `json:"ca"`
	Token string `json:"token"`
}

// DriverClusterConfig is the cluster-facing half of the driver payload.
type DriverClusterConfig struct {
	Endpoint                string                  `json:"endpoint"`
	KubernetesVersion       string                  `json:"kubernetesVersion"`
	Name                    string                  `json:"name"`
	NodePools               []NodePool              `json:"nodePools"`
	Metadata                map[string]any          `json:"metadata"`
	Settings                DriverSettings          `json:"settings"`
	DeploymentConfiguration DeploymentConfiguration `json:"deploymentConfiguration"`
	Plugins                 []Plugin                `json:"plugins"`
	Provider                Provider                `json:"provider"`
}

// DriverSettings holds namespace-level settings.
type DriverSettings struct {
	DefaultNamespace string `json:"defaultNamespace"`
}

// DeploymentConfiguration describes how FaaS workloads are deployed on the
// cluster.
type DeploymentConfiguration struct {
	Volumes              []Volume                    `json:"volumes"`
	ServiceAccountName   string                      `json:"serviceAccountName"`
	SecurityContext      map[string]any              `json:"securityContext"`
	Registry             Registry                    `json:"registry"`
	DefaultResources     corev1.ResourceRequirements `json:"defaultResources"`
	InternalRequestsURL  *string                     `json:"internalRequestsUrl"`
	EnvironmentVariables []corev1.EnvVar             `json:"environmentVariables"`
}
