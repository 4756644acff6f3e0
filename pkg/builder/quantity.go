/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"github.com/hashicorp/go-multierror"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

// BuildResources parses the defaultResources quantity strings into a
// corev1.ResourceRequirements. Each of the four fields must satisfy the
// Kubernetes quantity grammar ("500m", "2", "512Mi", "2Gi", "1G", ...).
// Equivalent spellings such as "2048Mi" and "2Gi" parse to equal values.
//
// Requests <= limits is intentionally not enforced here; the cluster-side
// admission logic owns that rule.
func BuildResources(cfg *compute.ComputeConfig) (corev1.ResourceRequirements, error) {
	var errs *multierror.Error

	parse := func(path, raw string) resource.Quantity {
		q, err := resource.ParseQuantity(raw)
		if err != nil {
			errs = multierror.Append(errs, &InvalidQuantityError{Path: path, Raw: raw, Err: err})
			return resource.Quantity{}
		}
		return q
	}

	spec := cfg.DefaultResources
	req := corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    parse("defaultResources.requests.cpu", spec.Requests.CPU),
			corev1.ResourceMemory: parse("defaultResources.requests.memory", spec.Requests.Memory),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    parse("defaultResources.limits.cpu", spec.Limits.CPU),
			corev1.ResourceMemory: parse("defaultResources.limits.memory", spec.Limits.Memory),
		},
	}

	if err := errs.ErrorOrNil(); err != nil {
		return corev1.ResourceRequirements{}, err
	}
	return req, nil
}
