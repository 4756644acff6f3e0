/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	corev1 "k8s.io/api/core/v1"

	"golang.org/x/sync/errgroup"

	"github.com/dataloop-ai/computectl/pkg/compute"
)

// Output holds the results of all sub-resource builders. Each builder
// writes to a disjoint field, so ordering between them is not observable.
type Output struct {
	Volumes         []compute.Volume
	NodePools       []compute.NodePool
	Resources       corev1.ResourceRequirements
	SecurityContext map[string]any
}

// RunAll executes the four sub-resource builders concurrently. It returns
// the combined output together with every builder's error batch: a failed
// builder never interrupts the others, so the assembler can report every
// violation at once. The returned error is non-nil only when the context
// is cancelled, in which case output and batches are incomplete.
func RunAll(ctx context.Context, cfg *compute.ComputeConfig) (*Output, []error, error) {
	var (
		mu      sync.Mutex
		out     Output
		batches []error
	)

	collect := func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			batches = append(batches, err)
		}
		slog.Debug("builder finished", "builder", name, "failed", err != nil)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		defer observeBuilder("volumes", time.Now())
		vols, err := BuildVolumes(cfg)
		mu.Lock()
		out.Volumes = vols
		mu.Unlock()
		collect("volumes", err)
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		defer observeBuilder("nodepools", time.Now())
		pools, err := BuildNodePools(cfg)
		mu.Lock()
		out.NodePools = pools
		mu.Unlock()
		collect("nodepools", err)
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		defer observeBuilder("resources", time.Now())
		res, err := BuildResources(cfg)
		mu.Lock()
		out.Resources = res
		mu.Unlock()
		collect("resources", err)
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		defer observeBuilder("securitycontext", time.Now())
		sc, err := BuildSecurityContext(cfg)
		mu.Lock()
		out.SecurityContext = sc
		mu.Unlock()
		collect("securitycontext", err)
		return nil
	})

	// Validation failures travel through batches, never through the group;
	// Wait only reports cancellation.
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return &out, batches, nil
}
