/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import "context"

// Serializer is an interface for serializing structured data such as
// validation results or decoded driver configs.
//
// The context parameter is used for cancellation and timeouts, which
// matters for implementations that perform I/O (e.g., ConfigMap writes).
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
