/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the overall validation outcome.
type Status string

const (
	// StatusPass indicates every check passed.
	StatusPass Status = "pass"

	// StatusFail indicates one or more checks found a violation.
	StatusFail Status = "fail"
)

// Violation describes one missing or malformed field. Path is the
// dotted field path in the input document (e.g. "organization.orgId").
type Violation struct {
	// Path is the field path the violation applies to.
	Path string `json:"path" yaml:"path"`

	// Reason is a human-readable description of the problem.
	Reason string `json:"reason" yaml:"reason"`

	// Value is the offending raw value, when quoting it is useful and safe.
	// Credentials are never echoed back.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// String renders the violation as "path: reason".
func (v Violation) String() string {
	if v.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", v.Path, v.Reason, v.Value)
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Reason)
}

// Summary contains aggregate statistics about a validation run.
type Summary struct {
	// Checked is the number of checks evaluated.
	Checked int `json:"checked" yaml:"checked"`

	// Violations is the number of violations found.
	Violations int `json:"violations" yaml:"violations"`

	// Status is the overall outcome.
	Status Status `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result is the complete outcome of a validation run. Checks never
// short-circuit: every violation in the document is present, so a user can
// fix the whole config in one pass.
type Result struct {
	// Violations contains every violation found, in check order.
	Violations []Violation `json:"violations" yaml:"violations"`

	// Summary contains aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Failed reports whether any violation was found.
func (r *Result) Failed() bool {
	return len(r.Violations) > 0
}

// Err converts the result into a ConfigValidationError, or nil if the
// document passed.
func (r *Result) Err() error {
	if !r.Failed() {
		return nil
	}
	return &ConfigValidationError{Violations: r.Violations}
}

// ConfigValidationError reports every missing or malformed required field
// found in a config document.
type ConfigValidationError struct {
	Violations []Violation
}

// Error enumerates all violated field paths.
func (e *ConfigValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid config: %d violation(s):", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.String())
	}
	return b.String()
}
