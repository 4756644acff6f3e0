/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package pipeline wires the configuration stages together: parse,
// field validation, defaulting, concurrent sub-resource builds, assembly,
// canonical encoding, and the artifact write. Everything up to the write
// is pure and deterministic; the write is the only I/O and happens last,
// after encoding succeeded in full.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dataloop-ai/computectl/pkg/builder"
	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/serializer"
	"github.com/dataloop-ai/computectl/pkg/validator"
)

// Artifact is the result of a successful pipeline run.
type Artifact struct {
	// Driver is the assembled transport document.
	Driver *compute.DriverConfig

	// Encoded is the base64 artifact string.
	Encoded string

	// Destination is where the artifact was written, if a sink was set.
	Destination string
}

// Pipeline runs the full validation and transformation flow for one
// config document.
type Pipeline struct {
	// Validator performs field-level validation. Defaults to
	// validator.New().
	Validator *validator.Validator

	// Sink receives the encoded artifact. Nil skips the write, which is
	// how tests and the validate command run the pure pipeline.
	Sink serializer.ArtifactSink
}

// Option is a functional option for configuring Pipeline instances.
type Option func(*Pipeline)

// WithValidator overrides the field validator.
func WithValidator(v *validator.Validator) Option {
	return func(p *Pipeline) {
		p.Validator = v
	}
}

// WithSink sets the artifact sink.
func WithSink(s serializer.ArtifactSink) Option {
	return func(p *Pipeline) {
		p.Sink = s
	}
}

// New creates a Pipeline with the provided options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		Validator: validator.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline against a raw JSON document.
//
// Failure surface: a *validator.ConfigValidationError when field checks
// fail, or the merged builder batches from the assembler. Both enumerate
// every violation found, so one run reports every problem at once. Nothing
// here is retriable; the input must be fixed.
func (p *Pipeline) Run(ctx context.Context, raw []byte) (*Artifact, error) {
	start := time.Now()
	status := "error"
	defer func() {
		pipelineDuration.Observe(time.Since(start).Seconds())
		pipelineTotal.WithLabelValues(status).Inc()
	}()

	cfg, err := compute.ParseConfig(raw)
	if err != nil {
		return nil, err
	}

	return p.run(ctx, cfg, &status)
}

// RunConfig executes the pipeline against an already-parsed document.
func (p *Pipeline) RunConfig(ctx context.Context, cfg *compute.ComputeConfig) (*Artifact, error) {
	start := time.Now()
	status := "error"
	defer func() {
		pipelineDuration.Observe(time.Since(start).Seconds())
		pipelineTotal.WithLabelValues(status).Inc()
	}()

	return p.run(ctx, cfg, &status)
}

func (p *Pipeline) run(ctx context.Context, cfg *compute.ComputeConfig, status *string) (*Artifact, error) {
	result, err := p.Validator.Validate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		*status = "invalid"
		return nil, err
	}

	normalized := cfg.WithDefaults()

	built, batches, err := builder.RunAll(ctx, &normalized)
	if err != nil {
		return nil, err
	}

	driver, err := compute.Assemble(&normalized,
		built.Volumes, built.NodePools, built.Resources, built.SecurityContext,
		batches...)
	if err != nil {
		*status = "invalid"
		return nil, err
	}

	encoded, err := compute.Encode(driver)
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Driver:  driver,
		Encoded: encoded,
	}

	if p.Sink != nil {
		if err := p.Sink.Write(ctx, []byte(encoded)); err != nil {
			return nil, err
		}
		artifact.Destination = p.Sink.Destination()
		slog.Info("artifact written",
			"destination", artifact.Destination,
			"length", len(encoded))
	}

	*status = "success"
	return artifact, nil
}

// Validate runs only the field validator against a raw document and
// returns the accumulated result without failing on violations.
func (p *Pipeline) Validate(ctx context.Context, raw []byte) (*validator.Result, error) {
	cfg, err := compute.ParseConfig(raw)
	if err != nil {
		return nil, err
	}
	result, err := p.Validator.Validate(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed to run: %w", err)
	}
	return result, nil
}
