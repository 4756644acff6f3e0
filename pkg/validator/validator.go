/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/distribution/reference"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/version"
)

// Validator checks presence, format, and enum membership of every required
// field in a compute config document. Checks run in a fixed order and
// accumulate all violations before failing, so error reporting is
// reproducible and complete.
type Validator struct {
	// MinKubernetes is the minimum cluster version accepted.
	MinKubernetes version.Version
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithMinKubernetes returns an Option that overrides the minimum accepted
// Kubernetes version.
func WithMinKubernetes(v version.Version) Option {
	return func(va *Validator) {
		va.MinKubernetes = v
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		MinKubernetes: version.MinSupportedKubernetes,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates all checks against the document and returns the
// accumulated result. It is side-effect-free: the document is not modified
// and no violation aborts the remaining checks.
func (v *Validator) Validate(ctx context.Context, cfg *compute.ComputeConfig) (*Result, error) {
	start := time.Now()

	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	run := &checkRun{}

	// Check order is fixed: sections, leaves, formats, enums. New checks
	// append at the end of their group to keep reported order stable.
	v.checkOrganization(run, cfg)
	v.checkCluster(run, cfg)
	v.checkAuthentication(run, cfg)
	v.checkRegistry(run, cfg)
	v.checkNetwork(run, cfg)
	v.checkPlugins(run, cfg)
	v.checkNodePools(run, cfg)
	v.checkDefaultResources(run, cfg)
	v.checkMetadata(run, cfg)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result := &Result{Violations: run.violations}
	result.Summary = Summary{
		Checked:    run.checked,
		Violations: len(run.violations),
		Duration:   time.Since(start),
	}
	if result.Failed() {
		result.Summary.Status = StatusFail
	} else {
		result.Summary.Status = StatusPass
	}

	slog.Debug("field validation completed",
		"checked", result.Summary.Checked,
		"violations", result.Summary.Violations,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// checkRun accumulates violations across checks.
type checkRun struct {
	checked    int
	violations []Violation
}

func (r *checkRun) ok() {
	r.checked++
}

func (r *checkRun) fail(path, reason string) {
	r.checked++
	r.violations = append(r.violations, Violation{Path: path, Reason: reason})
}

func (r *checkRun) failValue(path, reason, value string) {
	r.checked++
	r.violations = append(r.violations, Violation{Path: path, Reason: reason, Value: value})
}

func (v *Validator) checkOrganization(run *checkRun, cfg *compute.ComputeConfig) {
	org := cfg.Organization
	if org.OrgID == "" {
		run.fail("organization.orgId", "required field is missing")
	} else if IsPlaceholder(org.OrgID) {
		run.failValue("organization.orgId", "placeholder value was not replaced", org.OrgID)
	} else if _, err := uuid.Parse(org.OrgID); err != nil {
		run.failValue("organization.orgId", "must be a valid UUID", org.OrgID)
	} else {
		run.ok()
	}

	// env is optional (defaults to rc), but must be a known environment
	// when supplied.
	if org.Env != "" && !org.Env.IsValid() {
		run.failValue("organization.env", "unknown environment", string(org.Env))
	} else {
		run.ok()
	}
}

func (v *Validator) checkCluster(run *checkRun, cfg *compute.ComputeConfig) {
	cl := cfg.Cluster

	if cl.Name == "" {
		run.fail("cluster.name", "required field is missing")
	} else {
		run.ok()
	}

	switch {
	case cl.Endpoint == "":
		run.fail("cluster.endpoint", "required field is missing")
	case !hasHTTPSPrefix(cl.Endpoint):
		run.failValue("cluster.endpoint", "must start with https://", cl.Endpoint)
	default:
		run.ok()
	}

	switch {
	case cl.KubernetesVersion == "":
		run.fail("cluster.kubernetesVersion", "required field is missing")
	default:
		kv, err := version.Parse(cl.KubernetesVersion)
		switch {
		case err != nil:
			run.failValue("cluster.kubernetesVersion", "not a parsable version", cl.KubernetesVersion)
		case !kv.AtLeast(v.MinKubernetes):
			run.failValue("cluster.kubernetesVersion",
				fmt.Sprintf("must be %s or newer", v.MinKubernetes), cl.KubernetesVersion)
		default:
			run.ok()
		}
	}

	switch {
	case cl.Provider == "":
		run.fail("cluster.provider", "required field is missing")
	case !cl.Provider.IsValid():
		run.failValue("cluster.provider", "must be one of aws, gcp, azure", string(cl.Provider))
	default:
		run.ok()
	}

	if cl.DefaultNamespace == "" {
		run.fail("cluster.defaultNamespace", "required field is missing")
	} else {
		run.ok()
	}
}

func (v *Validator) checkAuthentication(run *checkRun, cfg *compute.ComputeConfig) {
	auth := cfg.Authentication

	switch {
	case auth.Token == "":
		run.fail("authentication.token", "required field is missing")
	case !isJWTShaped(auth.Token):
		run.fail("authentication.token", "must be a JWT (three base64 segments)")
	default:
		run.ok()
	}

	// An empty CA is accepted for clusters with publicly trusted endpoints;
	// a non-empty one must decode.
	if auth.CA == "" {
		slog.Warn("authentication.ca is empty; set it if the cluster requires a CA certificate")
		run.ok()
	} else if _, err := base64.StdEncoding.DecodeString(auth.CA); err != nil {
		run.fail("authentication.ca", "must be valid base64")
	} else {
		run.ok()
	}
}

func (v *Validator) checkRegistry(run *checkRun, cfg *compute.ComputeConfig) {
	reg := cfg.Registry

	if reg == (compute.Registry{}) {
		run.fail("registry", "required section is missing")
		return
	}
	run.ok()

	// Folders default later; when present, domain/folder must form a valid
	// image repository name.
	for _, f := range []struct {
		path   string
		folder string
	}{
		{"registry.faasFolder", reg.FaasFolder},
		{"registry.bootstrapFolder", reg.BootstrapFolder},
	} {
		if reg.Domain == "" || f.folder == "" {
			run.ok()
			continue
		}
		repo := reg.Domain + "/" + f.folder
		if _, err := reference.ParseNormalizedNamed(repo); err != nil {
			run.failValue(f.path, "does not form a valid image repository name", repo)
		} else {
			run.ok()
		}
	}
}

func (v *Validator) checkNetwork(run *checkRun, cfg *compute.ComputeConfig) {
	net := cfg.Network

	if net.InternalRequestsURL != nil && *net.InternalRequestsURL != "" &&
		!hasHTTPPrefix(*net.InternalRequestsURL) {
		run.failValue("network.internalRequestsUrl", "must be an http(s) URL", *net.InternalRequestsURL)
	} else {
		run.ok()
	}

	// Exact duplicate name+value pairs are always a mistake. Same-name
	// different-value entries are left to the cluster to resolve.
	seen := make(map[string]bool, len(net.EnvironmentVariables))
	for i, ev := range net.EnvironmentVariables {
		key := ev.Name + "=" + ev.Value
		if ev.Name == "" {
			run.fail(fmt.Sprintf("network.environmentVariables[%d].name", i), "required field is missing")
			continue
		}
		if seen[key] {
			run.failValue(fmt.Sprintf("network.environmentVariables[%d]", i),
				"duplicate environment variable entry", ev.Name)
			continue
		}
		seen[key] = true
		run.ok()
	}
}

func (v *Validator) checkPlugins(run *checkRun, cfg *compute.ComputeConfig) {
	if len(cfg.Plugins) == 0 {
		run.fail("plugins", "required section is missing")
	} else {
		run.ok()
	}

	names := cfg.PluginNames()
	for _, required := range compute.MandatoryPlugins() {
		if !names[required] {
			run.failValue("plugins", "mandatory plugin is missing", required)
		} else {
			run.ok()
		}
	}
}

func (v *Validator) checkNodePools(run *checkRun, cfg *compute.ComputeConfig) {
	if len(cfg.NodePools) == 0 {
		run.fail("nodePools", "required section is missing")
		return
	}
	run.ok()

	for i, pool := range cfg.NodePools {
		if pool.Name == "" {
			run.fail(fmt.Sprintf("nodePools[%d].name", i), "required field is missing")
		} else {
			run.ok()
		}
		for _, t := range pool.DLTypes {
			if !t.IsValid() {
				run.failValue(fmt.Sprintf("nodePools[%d].dlTypes", i),
					"unknown instance type", string(t))
			} else {
				run.ok()
			}
		}
	}
}

func (v *Validator) checkDefaultResources(run *checkRun, cfg *compute.ComputeConfig) {
	res := cfg.DefaultResources
	for _, f := range []struct {
		path  string
		value string
	}{
		{"defaultResources.requests.cpu", res.Requests.CPU},
		{"defaultResources.requests.memory", res.Requests.Memory},
		{"defaultResources.limits.cpu", res.Limits.CPU},
		{"defaultResources.limits.memory", res.Limits.Memory},
	} {
		if f.value == "" {
			run.fail(f.path, "required field is missing")
		} else {
			run.ok()
		}
	}
}

func (v *Validator) checkMetadata(run *checkRun, cfg *compute.ComputeConfig) {
	raw, present := cfg.Metadata["serveAgentServiceType"]
	if !present {
		run.ok()
		return
	}
	s, isString := raw.(string)
	if !isString {
		run.fail("metadata.serveAgentServiceType", "must be a string")
		return
	}
	for _, allowed := range compute.ServeAgentServiceTypes {
		if s == allowed {
			run.ok()
			return
		}
	}
	run.failValue("metadata.serveAgentServiceType",
		"must be one of ClusterIP, LoadBalancer", s)
}

// isJWTShaped reports whether the token parses as a three-segment JWT.
// Signatures are not verified; only the shape matters here.
func isJWTShaped(token string) bool {
	_, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	return err == nil
}

// Placeholder values from config templates that were never filled in.
var placeholders = map[string]bool{
	"{{org-id}}":       true,
	"YOUR_ORG_ID_HERE": true,
}

// IsPlaceholder reports whether the value is an unfilled template
// placeholder. Used here to reject template configs and by the list
// command to skip them.
func IsPlaceholder(s string) bool {
	return placeholders[s] || (len(s) > 9 && s[:9] == "<REPLACE:")
}

func hasHTTPSPrefix(s string) bool {
	return len(s) >= 8 && s[:8] == "https://"
}

func hasHTTPPrefix(s string) bool {
	return hasHTTPSPrefix(s) || (len(s) >= 7 && s[:7] == "http://")
}
