/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package compute implements the compute driver configuration pipeline:
// parsing the operator-authored JSON document, applying canonical defaults,
// assembling the transport payload consumed by the control-plane API, and
// encoding it into the base64 artifact.
//
// The pipeline is a pure, deterministic function from one structured
// document to another:
//
//	raw document -> validator.Validate -> WithDefaults -> builder.RunAll
//	             -> Assemble -> Encoder.Encode -> base64 artifact
//
// Field-level validation lives in pkg/validator; the nested sub-resource
// builders (volumes, node pools, resource quantities, security context)
// live in pkg/builder. This package owns the document model, the defaulting
// pass, the assembler, and the canonical encoder.
package compute
