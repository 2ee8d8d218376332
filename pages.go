/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmosrepository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rclarkdev/CosmosRepository/store"
)

// Page is one bounded slice of a query result: the decoded items, the
// cumulative request charge of every batch fetched to fill it, and the token
// to resume after it. ContinuationToken is nil when no further results exist.
type Page[T Item] struct {
	Items             []T
	RequestCharge     float64
	ContinuationToken *string
}

// collectAll drains the cursor, decoding every document into T. The cursor is
// closed before returning, on every path. Cancellation is cooperative: the
// context is checked before each fetch, never mid-fetch.
func collectAll[T Item](ctx context.Context, cur store.Cursor) ([]T, error) {
	defer cur.Close()

	var items []T
	for cur.More() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch, err := cur.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		for _, raw := range batch.Items {
			item, err := decodeItem[T](raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// collectPage pulls batches until pageSize items are accumulated or the
// cursor is exhausted. The tail of an over-fetched batch is discarded, but
// its full request charge still counts; the continuation token is whatever
// the store reported for the last fetch performed.
func collectPage[T Item](ctx context.Context, cur store.Cursor, pageSize int) ([]T, float64, *string, error) {
	defer cur.Close()

	var (
		items  []T
		charge float64
		token  *string
	)

	for cur.More() && len(items) < pageSize {
		if err := ctx.Err(); err != nil {
			return nil, 0, nil, err
		}

		batch, err := cur.Fetch(ctx)
		if err != nil {
			return nil, 0, nil, err
		}

		charge += batch.RequestCharge
		token = batch.ContinuationToken

		for _, raw := range batch.Items {
			if len(items) == pageSize {
				break
			}
			item, err := decodeItem[T](raw)
			if err != nil {
				return nil, 0, nil, err
			}
			items = append(items, item)
		}
	}

	return items, charge, token, nil
}

func decodeItem[T Item](raw []byte) (T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("failed to decode item: %w", err)
	}
	return item, nil
}
