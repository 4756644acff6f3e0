/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides output utilities for computectl: a Writer
// for human-facing structured output (validation results, decoded driver
// configs) in JSON or YAML, and ArtifactSink implementations for the raw
// base64 artifact (local file or cm://namespace/name ConfigMap URIs).
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// Writers buffer nothing beyond the underlying destination; sinks receive
// the artifact only after encoding completed successfully, so a failed
// pipeline never leaves a partial artifact behind.
package serializer
