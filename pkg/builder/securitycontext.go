/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

// BuildSecurityContext validates the pod security context mapping. An empty
// mapping passes through unchanged. When non-empty, runAsUser, runAsGroup,
// and fsGroup must be non-negative integers and runAsNonRoot must be a
// boolean. Keys outside the validated set pass through untouched, so
// cluster-specific fields (e.g. fsGroupChangePolicy) survive the pipeline.
func BuildSecurityContext(cfg *compute.ComputeConfig) (map[string]any, error) {
	sc := cfg.SecurityContext
	if len(sc) == 0 {
		return sc, nil
	}

	var errs *multierror.Error

	for _, field := range []string{"runAsUser", "runAsGroup", "fsGroup"} {
		raw, present := sc[field]
		if !present {
			continue
		}
		id, ok := asInteger(raw)
		if !ok {
			errs = multierror.Append(errs, &SecurityContextError{
				Field: field, Reason: "must be an integer"})
			continue
		}
		if id < 0 {
			errs = multierror.Append(errs, &SecurityContextError{
				Field: field, Reason: "must be non-negative"})
		}
	}

	if raw, present := sc["runAsNonRoot"]; present {
		if _, ok := raw.(bool); !ok {
			errs = multierror.Append(errs, &SecurityContextError{
				Field: "runAsNonRoot", Reason: "must be a boolean"})
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return sc, nil
}

// asInteger accepts the numeric representations a JSON decode can produce.
func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
