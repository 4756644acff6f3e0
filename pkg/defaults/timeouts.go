/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes timeout values used across computectl.
// Keeping them in one place makes the relationships between related
// timeouts visible (e.g. handler timeouts must exceed the work they wrap).
package defaults

import "time"

// Server timeouts for the validation service HTTP server.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound control-plane requests.
const (
	// HTTPClientTimeout is the total timeout for a control-plane request.
	HTTPClientTimeout = 30 * time.Second
)

// Kubernetes timeouts.
const (
	// ConfigMapWriteTimeout bounds the API call when writing the artifact
	// to a ConfigMap.
	ConfigMapWriteTimeout = 30 * time.Second
)

// Pipeline timeouts.
const (
	// ValidateHandlerTimeout bounds one validation request in the HTTP
	// service. Validation is pure computation; this only guards against
	// pathological inputs.
	ValidateHandlerTimeout = 10 * time.Second
)
