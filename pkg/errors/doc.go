/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to create compute driver",
//	    httpErr,
//	    map[string]interface{}{
//	        "orgId": orgID,
//	        "env":   env,
//	    },
//	)
//
// Domain validation failures (invalid volumes, node pools, quantities) use
// dedicated typed errors in pkg/builder and pkg/validator instead, so that
// callers can match on the violation kind with errors.As.
package errors
