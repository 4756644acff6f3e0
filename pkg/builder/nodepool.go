/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	corev1 "k8s.io/api/core/v1"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

var tolerationOperators = map[corev1.TolerationOperator]bool{
	"":                        true,
	corev1.TolerationOpExists: true,
	corev1.TolerationOpEqual:  true,
}

var taintEffects = map[corev1.TaintEffect]bool{
	"":                                 true,
	corev1.TaintEffectNoSchedule:       true,
	corev1.TaintEffectPreferNoSchedule: true,
	corev1.TaintEffectNoExecute:        true,
}

// BuildNodePools validates the node pool sequence: pool names are unique,
// exactly one pool is the instance-type default, every dlTypes token is in
// the closed vocabulary, and tolerations use valid operators and effects.
// The returned error, when non-nil, is a multierror containing every
// violation found.
func BuildNodePools(cfg *compute.ComputeConfig) ([]compute.NodePool, error) {
	var errs *multierror.Error

	seen := make(map[string]bool, len(cfg.NodePools))
	var defaults []string

	for i, pool := range cfg.NodePools {
		name := pool.Name
		if name == "" {
			name = fmt.Sprintf("nodePools[%d]", i)
		}

		if pool.Name != "" && seen[pool.Name] {
			errs = multierror.Append(errs, &DuplicatePoolNameError{Name: pool.Name})
		}
		seen[pool.Name] = true

		if pool.IsDLTypeDefault {
			defaults = append(defaults, name)
		}

		if len(pool.DLTypes) == 0 {
			errs = multierror.Append(errs, &UnknownInstanceTypeError{
				Pool: name, Token: "(empty dlTypes)"})
		}
		for _, t := range pool.DLTypes {
			if !t.IsValid() {
				errs = multierror.Append(errs, &UnknownInstanceTypeError{
					Pool: name, Token: string(t)})
			}
		}

		for _, tol := range pool.Tolerations {
			if !tolerationOperators[tol.Operator] {
				errs = multierror.Append(errs, fmt.Errorf(
					"node pool %q: invalid toleration operator %q", name, tol.Operator))
			}
			if !taintEffects[tol.Effect] {
				errs = multierror.Append(errs, fmt.Errorf(
					"node pool %q: invalid toleration effect %q", name, tol.Effect))
			}
		}
	}

	switch {
	case len(defaults) == 0:
		errs = multierror.Append(errs, &NoDefaultPoolError{})
	case len(defaults) > 1:
		errs = multierror.Append(errs, &MultipleDefaultPoolsError{Pools: defaults})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg.NodePools, nil
}
