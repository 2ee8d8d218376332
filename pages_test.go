/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmosrepository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rclarkdev/CosmosRepository/store/mock"
)

type pageDoc struct {
	Document
	N int `json:"n"`
}

func doc(id string, n int) pageDoc {
	return pageDoc{Document: Document{ID: id, Type: "pageDoc"}, N: n}
}

func strptr(s string) *string { return &s }

func TestCollectAllDrainsEveryBatch(t *testing.T) {
	cur := mock.NewCursor(
		mock.BatchOf(2.5, strptr("t1"), doc("a", 1), doc("b", 2)),
		mock.BatchOf(1.5, nil, doc("c", 3)),
	)

	items, err := collectAll[pageDoc](context.Background(), cur)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, 3, items[2].N)
	assert.True(t, cur.Closed(), "cursor must be closed after collection")
}

func TestCollectAllPropagatesFetchFailure(t *testing.T) {
	fetchErr := errors.New("throttled")
	cur := mock.NewCursor(
		mock.BatchOf(1, strptr("t1"), doc("a", 1)),
	).WithFetchError(1, fetchErr)

	_, err := collectAll[pageDoc](context.Background(), cur)

	assert.ErrorIs(t, err, fetchErr)
	assert.True(t, cur.Closed(), "cursor must be closed on failure")
}

func TestCollectAllStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cur := mock.NewCursor(mock.BatchOf(1, nil, doc("a", 1)))

	_, err := collectAll[pageDoc](ctx, cur)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, cur.Closed())
}

func TestCollectPageStopsMidBatch(t *testing.T) {
	// Irregular batch sizes: 2, then 3. Page size 3 means the second batch
	// is over-fetched and partially discarded.
	cur := mock.NewCursor(
		mock.BatchOf(2.0, strptr("t1"), doc("a", 1), doc("b", 2)),
		mock.BatchOf(3.0, strptr("t2"), doc("c", 3), doc("d", 4), doc("e", 5)),
	)

	items, charge, token, err := collectPage[pageDoc](context.Background(), cur, 3)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[2].ID, "partial consumption keeps batch order")

	// Charge counts every batch fetched in full, discarded tail included.
	assert.Equal(t, 5.0, charge)

	// The token is whatever the store reported for the last fetch.
	require.NotNil(t, token)
	assert.Equal(t, "t2", *token)
	assert.True(t, cur.Closed())
}

func TestCollectPageShortResultSet(t *testing.T) {
	cur := mock.NewCursor(
		mock.BatchOf(1.0, nil, doc("a", 1), doc("b", 2)),
	)

	items, charge, token, err := collectPage[pageDoc](context.Background(), cur, 10)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1.0, charge)
	assert.Nil(t, token, "exhausted result set has no continuation")
}

func TestCollectPageExactBoundary(t *testing.T) {
	cur := mock.NewCursor(
		mock.BatchOf(1.0, strptr("t1"), doc("a", 1), doc("b", 2)),
		mock.BatchOf(1.0, nil, doc("c", 3)),
	)

	items, charge, token, err := collectPage[pageDoc](context.Background(), cur, 2)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1.0, charge, "no extra batch is fetched once the page is full")
	require.NotNil(t, token)
	assert.Equal(t, "t1", *token)
}

func TestCollectPagePropagatesFetchFailure(t *testing.T) {
	fetchErr := errors.New("malformed query")
	cur := mock.NewCursor().WithFetchError(0, fetchErr)

	_, _, _, err := collectPage[pageDoc](context.Background(), cur, 5)

	assert.ErrorIs(t, err, fetchErr)
	assert.True(t, cur.Closed())
}
