/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"fmt"
	"strings"
)

// VolumeConfigError reports a volume whose source-variant cardinality is
// wrong, or whose required fields are missing. Sources lists the populated
// source keys (empty for the zero-sources case).
type VolumeConfigError struct {
	Volume  string
	Sources []string
	Reason  string
}

func (e *VolumeConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("volume %q: %s", e.Volume, e.Reason)
	}
	if len(e.Sources) == 0 {
		return fmt.Sprintf("volume %q: no volume source is set; exactly one is required", e.Volume)
	}
	return fmt.Sprintf("volume %q: multiple volume sources set (%s); exactly one is required",
		e.Volume, strings.Join(e.Sources, ", "))
}

// InvalidHostPathTypeError reports a hostPath volume with a type outside
// {Directory, DirectoryOrCreate, File, FileOrCreate}.
type InvalidHostPathTypeError struct {
	Volume string
	Type   string
}

func (e *InvalidHostPathTypeError) Error() string {
	return fmt.Sprintf("volume %q: invalid hostPath type %q (allowed: Directory, DirectoryOrCreate, File, FileOrCreate)",
		e.Volume, e.Type)
}

// MultipleDefaultPoolsError reports more than one node pool flagged as the
// default instance-type pool.
type MultipleDefaultPoolsError struct {
	Pools []string
}

func (e *MultipleDefaultPoolsError) Error() string {
	return fmt.Sprintf("multiple node pools marked isDlTypeDefault (%s); exactly one is required",
		strings.Join(e.Pools, ", "))
}

// NoDefaultPoolError reports that no node pool is flagged as the default.
type NoDefaultPoolError struct{}

func (e *NoDefaultPoolError) Error() string {
	return "no node pool marked isDlTypeDefault; exactly one is required"
}

// DuplicatePoolNameError reports a node pool name used more than once.
type DuplicatePoolNameError struct {
	Name string
}

func (e *DuplicatePoolNameError) Error() string {
	return fmt.Sprintf("duplicate node pool name %q", e.Name)
}

// UnknownInstanceTypeError reports a dlTypes token outside the closed
// instance-type vocabulary.
type UnknownInstanceTypeError struct {
	Pool  string
	Token string
}

func (e *UnknownInstanceTypeError) Error() string {
	return fmt.Sprintf("node pool %q: unknown instance type %q", e.Pool, e.Token)
}

// InvalidQuantityError reports a CPU or memory value that does not parse
// as a Kubernetes quantity string.
type InvalidQuantityError struct {
	Path string
	Raw  string
	Err  error
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: invalid quantity %q: %v", e.Path, e.Raw, e.Err)
}

func (e *InvalidQuantityError) Unwrap() error {
	return e.Err
}

// SecurityContextError reports a malformed securityContext field.
type SecurityContextError struct {
	Field  string
	Reason string
}

func (e *SecurityContextError) Error() string {
	return fmt.Sprintf("securityContext.%s: %s", e.Field, e.Reason)
}
