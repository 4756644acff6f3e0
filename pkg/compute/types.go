/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
)

// ComputeConfig is the root of the operator-authored configuration document.
// It is constructed once per invocation, validated, normalized in place,
// consumed by the encoder, and discarded.
type ComputeConfig struct {
	Organization     Organization   `json:"organization"`
	Cluster          Cluster        `json:"cluster"`
	Authentication   Authentication `json:"authentication"`
	Registry         Registry       `json:"registry"`
	Network          Network        `json:"network"`
	Volumes          []Volume       `json:"volumes,omitempty"`
	Plugins          []Plugin       `json:"plugins"`
	NodePools        []NodePool     `json:"nodePools"`
	DefaultResources ResourceSpec   `json:"defaultResources"`
	SecurityContext  map[string]any `json:"securityContext,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	Output           Output         `json:"output"`
}

// Organization identifies the org the compute driver is registered under.
type Organization struct {
	OrgID string      `json:"orgId"`
	Env   Environment `json:"env"`
}

// Cluster describes the target Kubernetes cluster.
type Cluster struct {
	Name              string   `json:"name"`
	Endpoint          string   `json:"endpoint"`
	KubernetesVersion string   `json:"kubernetesVersion"`
	Provider          Provider `json:"provider"`
	DefaultNamespace  string   `json:"defaultNamespace"`

	// ServiceAccountName defaults to "faas" when omitted.
	ServiceAccountName string `json:"serviceAccountName,omitempty"`
}

// Authentication carries the cluster credentials embedded in the artifact.
type Authentication struct {
	// CA is the base64-encoded cluster CA certificate.
	CA string `json:"ca"`
	// Token is the service account bearer token (a JWT).
	Token string `json:"token"`
}

// Registry points at the container registry the FaaS runtime pulls from.
type Registry struct {
	Domain          string `json:"domain"`
	FaasFolder      string `json:"faasFolder"`
	BootstrapFolder string `json:"bootstrapFolder"`
}

// Network holds the in-cluster networking overrides for FaaS workloads.
type Network struct {
	InternalRequestsURL  *string         `json:"internalRequestsUrl"`
	EnvironmentVariables []corev1.EnvVar `json:"environmentVariables"`
}

// Volume describes a volume mounted into every FaaS workload. Exactly one
// of the embedded VolumeSource variants must be populated; pkg/builder
// enforces the cardinality. The embedded corev1.VolumeSource flattens the
// source keys (hostPath, persistentVolumeClaim, emptyDir, configMap,
// secret, nfs, ...) into the volume object, matching the wire shape.
type Volume struct {
	Name      string `json:"name"`
	MountPath string `json:"mountPath"`
	SubPath   string `json:"subPath,omitempty"`

	// ReadOnly defaults to false; nil means "not specified" so the
	// defaulting pass never overwrites an explicit value.
	ReadOnly *bool `json:"readOnly,omitempty"`

	corev1.VolumeSource `json:",inline"`
}

// Plugin names a runtime plugin enabled on the compute. The plugins set
// must include "monitoring" and "scaler".
type Plugin struct {
	Name   string         `json:"name"`
	Config map[string]any `json:"config,omitempty"`
}

// NodePool is a named group of cluster nodes with shared instance-type and
// scheduling constraints. Exactly one pool across the document must have
// IsDLTypeDefault set.
type NodePool struct {
	Name            string              `json:"name"`
	IsDLTypeDefault bool                `json:"isDlTypeDefault"`
	DLTypes         []InstanceType      `json:"dlTypes"`
	Tolerations     []corev1.Toleration `json:"tolerations,omitempty"`
	Description     string              `json:"description,omitempty"`
	NodeSelector    map[string]string   `json:"nodeSelector,omitempty"`
	Preemptible     *bool               `json:"preemptible,omitempty"`
}

// ResourceSpec holds the default CPU/memory requests and limits applied to
// FaaS workloads, as Kubernetes quantity strings.
type ResourceSpec struct {
	Requests ResourcePair `json:"requests"`
	Limits   ResourcePair `json:"limits"`
}

// ResourcePair is one requests or limits entry.
type ResourcePair struct {
	CPU    string `json:"cpu"`
	Memory string `json:"memory"`
}

// Output names the local artifact sink.
type Output struct {
	// Base64ConfigFile defaults to "base64_config.txt".
	Base64ConfigFile string `json:"base64ConfigFile,omitempty"`
}

// ParseConfig parses a raw JSON document into a ComputeConfig. Structural
// type mismatches (e.g. a string where an object is expected) surface here;
// field-level constraints are checked by pkg/validator afterwards.
func ParseConfig(raw []byte) (*ComputeConfig, error) {
	var cfg ComputeConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config document: %w", err)
	}
	return &cfg, nil
}

// PluginNames returns the set of plugin names present in the document.
func (c *ComputeConfig) PluginNames() map[string]bool {
	names := make(map[string]bool, len(c.Plugins))
	for _, p := range c.Plugins {
		names[p.Name] = true
	}
	return names
}
