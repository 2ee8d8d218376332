/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package mock

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rclarkdev/CosmosRepository/store"
)

// Cursor replays scripted batches.
type Cursor struct {
	mu       sync.Mutex
	batches  []store.Batch
	next     int
	failAt   int
	fetchErr error
	closed   bool
}

// NewCursor creates a cursor over the given batches.
func NewCursor(batches ...store.Batch) *Cursor {
	return &Cursor{batches: batches, failAt: -1}
}

// WithFetchError makes the fetch of batch index at fail instead of
// returning the batch.
func (c *Cursor) WithFetchError(at int, err error) *Cursor {
	c.failAt = at
	c.fetchErr = err
	return c
}

func (c *Cursor) More() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next < len(c.batches) || c.next == c.failAt
}

func (c *Cursor) Fetch(ctx context.Context) (store.Batch, error) {
	if err := ctx.Err(); err != nil {
		return store.Batch{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next == c.failAt {
		return store.Batch{}, c.fetchErr
	}
	batch := c.batches[c.next]
	c.next++
	return batch, nil
}

func (c *Cursor) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Closed reports whether Close was called.
func (c *Cursor) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// BatchOf marshals docs into one batch with the given charge and token.
func BatchOf(charge float64, token *string, docs ...any) store.Batch {
	batch := store.Batch{RequestCharge: charge, ContinuationToken: token}
	for _, d := range docs {
		raw, err := json.Marshal(d)
		if err != nil {
			panic(err)
		}
		batch.Items = append(batch.Items, raw)
	}
	return batch
}
