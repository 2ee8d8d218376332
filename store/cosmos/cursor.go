/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmos

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/rclarkdev/CosmosRepository/store"
)

// cursor adapts the SDK's query pager to store.Cursor.
type cursor struct {
	name  string
	pager *runtime.Pager[azcosmos.QueryItemsResponse]
}

func (c *cursor) More() bool {
	return c.pager != nil && c.pager.More()
}

func (c *cursor) Fetch(ctx context.Context) (store.Batch, error) {
	resp, err := c.pager.NextPage(ctx)
	if err != nil {
		return store.Batch{}, translateError(c.name, "query", "", err)
	}

	return store.Batch{
		Items:             resp.Items,
		RequestCharge:     float64(resp.RequestCharge),
		ContinuationToken: resp.ContinuationToken,
	}, nil
}

func (c *cursor) Close() {
	c.pager = nil
}
