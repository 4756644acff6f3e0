/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package builder validates and normalizes the nested Kubernetes-shaped
// sub-structures of a compute config: volumes, node pools, default resource
// quantities, and the pod security context.
//
// Each builder is pure and independent of the others, so RunAll executes
// them concurrently. A builder returns its complete error batch (every
// violation it found, joined with go-multierror) rather than stopping at
// the first problem; the config assembler merges all batches into one
// combined failure.
package builder
