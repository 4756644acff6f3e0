/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"github.com/hashicorp/go-multierror"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

// hostPathTypes is the closed set of hostPath types the FaaS runtime
// supports. Socket/char/block device types are deliberately excluded.
var hostPathTypes = map[corev1.HostPathType]bool{
	corev1.HostPathDirectory:         true,
	corev1.HostPathDirectoryOrCreate: true,
	corev1.HostPathFile:              true,
	corev1.HostPathFileOrCreate:      true,
}

// BuildVolumes validates and normalizes the volumes sequence. Each volume
// must populate exactly one source variant; hostPath types are normalized
// against the closed enum; readOnly defaults to false. The returned error,
// when non-nil, is a multierror containing every violation found.
func BuildVolumes(cfg *compute.ComputeConfig) ([]compute.Volume, error) {
	var errs *multierror.Error

	out := make([]compute.Volume, 0, len(cfg.Volumes))
	seen := make(map[string]bool, len(cfg.Volumes))

	for _, vol := range cfg.Volumes {
		if vol.Name == "" {
			errs = multierror.Append(errs, &VolumeConfigError{
				Volume: vol.Name, Reason: "name is required"})
			continue
		}
		if seen[vol.Name] {
			errs = multierror.Append(errs, &VolumeConfigError{
				Volume: vol.Name, Reason: "duplicate volume name"})
			continue
		}
		seen[vol.Name] = true

		if vol.MountPath == "" {
			errs = multierror.Append(errs, &VolumeConfigError{
				Volume: vol.Name, Reason: "mountPath is required"})
		}

		sources := populatedSources(vol.VolumeSource)
		if len(sources) != 1 {
			errs = multierror.Append(errs, &VolumeConfigError{
				Volume: vol.Name, Sources: sources})
			continue
		}

		if vol.HostPath != nil && vol.HostPath.Type != nil {
			if !hostPathTypes[*vol.HostPath.Type] {
				errs = multierror.Append(errs, &InvalidHostPathTypeError{
					Volume: vol.Name, Type: string(*vol.HostPath.Type)})
				continue
			}
		}

		if vol.ReadOnly == nil {
			vol.ReadOnly = ptr.To(false)
		}
		out = append(out, vol)
	}

	return out, errs.ErrorOrNil()
}

// populatedSources lists the populated source-variant keys of a volume,
// using their wire names. Only the variants the runtime supports are
// considered.
func populatedSources(src corev1.VolumeSource) []string {
	var sources []string
	if src.HostPath != nil {
		sources = append(sources, "hostPath")
	}
	if src.PersistentVolumeClaim != nil {
		sources = append(sources, "persistentVolumeClaim")
	}
	if src.EmptyDir != nil {
		sources = append(sources, "emptyDir")
	}
	if src.ConfigMap != nil {
		sources = append(sources, "configMap")
	}
	if src.Secret != nil {
		sources = append(sources, "secret")
	}
	if src.NFS != nil {
		sources = append(sources, "nfs")
	}
	return sources
}
