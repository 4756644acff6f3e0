/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

// unverified JWT with alg=none, used where only the token shape matters
const testToken = "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJmYWFzIn0.c2ln"

// testResources returns parsed default resources matching validConfig.
func testResources() corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("500m"),
			corev1.ResourceMemory: resource.MustParse("512Mi"),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("1"),
			corev1.ResourceMemory: resource.MustParse("1Gi"),
		},
	}
}

// validConfig returns a fully populated document that passes validation.
func validConfig() *ComputeConfig {
	return &ComputeConfig{
		Organization: Organization{
			OrgID: "8b109a2a-2a7d-4f2f-8a7e-5d2f0d6e9c11",
			Env:   EnvRC,
		},
		Cluster: Cluster{
			Name:              "my-cluster",
			Endpoint:          "https://34.1.2.3",
			KubernetesVersion: "1.27",
			Provider:          ProviderGCP,
			DefaultNamespace:  "dataloop",
		},
		Authentication: Authentication{
			CA:    "Y2EtZGF0YQ==",
			Token: testToken,
		},
		Registry: Registry{
			Domain:          "hub.dataloop.ai",
			FaasFolder:      "customerhub",
			BootstrapFolder: "customerhub",
		},
		Volumes: []Volume{
			{
				Name:      "models",
				MountPath: "/mnt/models",
				VolumeSource: corev1.VolumeSource{
					HostPath: &corev1.HostPathVolumeSource{Path: "/data/models"},
				},
			},
		},
		Plugins: []Plugin{
			{Name: PluginMonitoring},
			{Name: PluginScaler},
		},
		NodePools: []NodePool{
			{Name: "pool-cpu", IsDLTypeDefault: true, DLTypes: []InstanceType{InstanceRegularS}},
			{Name: "pool-gpu", DLTypes: []InstanceType{InstanceGPUT4}},
		},
		DefaultResources: ResourceSpec{
			Requests: ResourcePair{CPU: "500m", Memory: "512Mi"},
			Limits:   ResourcePair{CPU: "1", Memory: "1Gi"},
		},
	}
}
