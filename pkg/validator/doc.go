/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package validator implements field-level validation of compute config
// documents: presence of required sections and leaves, format checks
// (UUID, https endpoint, JWT-shaped token, base64 CA, version strings,
// image repository names), and closed-vocabulary membership (provider,
// environment, instance types, mandatory plugins).
//
// Checks run in a fixed deterministic order and never short-circuit: the
// Result accumulates every violation found so a single run reports every
// problem at once. Convert a failed Result to an error with Result.Err,
// which yields a *ConfigValidationError enumerating all field paths.
package validator
