/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package store

import "context"

// Store yields container handles by name. Implementations must be safe for
// concurrent use; the repository resolves containers lazily and may do so
// from multiple goroutines.
type Store interface {
	Container(name string) (Container, error)
}

// Container exposes the item-level operations of one named collection.
// Documents cross this boundary as raw JSON; typed encoding and decoding is
// the repository's job so that one container can hold heterogeneous shapes.
//
// Uniqueness within a container is the (id, partitionKey) pair. ReadItem and
// DeleteItem report a missing pair via errors.ErrNotFound; CreateItem reports
// an existing pair via errors.ErrConflict.
type Container interface {
	ReadItem(ctx context.Context, id, partitionKey string) ([]byte, error)

	CreateItem(ctx context.Context, partitionKey string, item []byte) ([]byte, error)

	UpsertItem(ctx context.Context, partitionKey string, item []byte) ([]byte, error)

	DeleteItem(ctx context.Context, id, partitionKey string) error

	QueryItems(query Query, opts QueryOptions) Cursor
}

// Cursor walks the result set of a query one server batch at a time.
// Callers must Close the cursor when done, regardless of outcome.
type Cursor interface {
	// More reports whether another batch can be fetched.
	More() bool

	// Fetch retrieves the next batch of raw documents.
	Fetch(ctx context.Context) (Batch, error)

	// Close releases any resources held by the cursor. It is safe to call
	// more than once.
	Close()
}

// Batch is one cursor fetch: the raw documents, the request charge the store
// billed for the fetch, and the continuation token to resume after it (nil
// when the result set is exhausted).
type Batch struct {
	Items             [][]byte
	RequestCharge     float64
	ContinuationToken *string
}
