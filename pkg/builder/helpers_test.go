/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

func hostPathType(t corev1.HostPathType) *corev1.HostPathType {
	return &t
}

// baseConfig returns a document whose builder inputs are all valid.
func baseConfig() *compute.ComputeConfig {
	return &compute.ComputeConfig{
		Volumes: []compute.Volume{
			{
				Name:      "models",
				MountPath: "/mnt/models",
				VolumeSource: corev1.VolumeSource{
					HostPath: &corev1.HostPathVolumeSource{
						Path: "/data/models",
						Type: hostPathType(corev1.HostPathDirectoryOrCreate),
					},
				},
			},
		},
		NodePools: []compute.NodePool{
			{Name: "pool-cpu", IsDLTypeDefault: true, DLTypes: []compute.InstanceType{compute.InstanceRegularS}},
			{Name: "pool-gpu", DLTypes: []compute.InstanceType{compute.InstanceGPUT4}},
		},
		DefaultResources: compute.ResourceSpec{
			Requests: compute.ResourcePair{CPU: "500m", Memory: "512Mi"},
			Limits:   compute.ResourcePair{CPU: "1", Memory: "1Gi"},
		},
		SecurityContext: map[string]any{},
	}
}
