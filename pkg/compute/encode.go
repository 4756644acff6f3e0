/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package compute

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Encode serializes the assembled DriverConfig deterministically and
// returns the base64-encoded artifact string.
//
// Determinism: struct fields marshal in declaration order and encoding/json
// sorts map keys, so encoding the same logical DriverConfig twice yields
// byte-identical output regardless of the original document's key order or
// whitespace. Integration tests compare the artifact literally, so any
// change to the payload structs is a wire-format change.
func Encode(dc *DriverConfig) (string, error) {
	if dc == nil {
		return "", fmt.Errorf("driver config cannot be nil")
	}
	data, err := json.MarshalIndent(dc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize driver config: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode reverses Encode, for round-trip verification and for displaying
// an existing artifact.
func Decode(encoded string) (*DriverConfig, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("artifact is not valid base64: %w", err)
	}
	var dc DriverConfig
	if err := json.Unmarshal(data, &dc); err != nil {
		return nil, fmt.Errorf("artifact does not decode as a driver config: %w", err)
	}
	return &dc, nil
}
