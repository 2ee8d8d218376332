/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/rclarkdev/CosmosRepository/config"
	repoerrors "github.com/rclarkdev/CosmosRepository/errors"
	"github.com/rclarkdev/CosmosRepository/store"
)

// Store implements store.Store over one Azure Cosmos DB database.
type Store struct {
	client   *azcosmos.Client
	database string

	mu         sync.Mutex
	containers map[string]*azcosmos.ContainerClient
}

// NewStore builds a Store from settings, authenticating with the account
// master key.
func NewStore(cfg *config.Settings) (*Store, error) {
	cred, err := azcosmos.NewKeyCredential(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential: %w", err)
	}

	client, err := azcosmos.NewClientWithKey(cfg.Endpoint, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cosmos client: %w", err)
	}

	return NewStoreWithClient(client, cfg.Database), nil
}

// NewStoreWithClient wraps an already-constructed client, for callers using
// token credentials or custom transport options.
func NewStoreWithClient(client *azcosmos.Client, database string) *Store {
	return &Store{
		client:     client,
		database:   database,
		containers: make(map[string]*azcosmos.ContainerClient),
	}
}

// Container resolves a container handle by name. Handles are cached; the
// underlying client is safe for concurrent use.
func (s *Store) Container(name string) (store.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cc, ok := s.containers[name]
	if !ok {
		var err error
		cc, err = s.client.NewContainer(s.database, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve container %q: %w", name, err)
		}
		s.containers[name] = cc
	}

	return &container{name: name, client: cc}, nil
}

type container struct {
	name   string
	client *azcosmos.ContainerClient
}

// writeOptions asks the service to echo written documents back, so create
// and upsert can return the payload as stored.
var writeOptions = &azcosmos.ItemOptions{EnableContentResponseOnWrite: true}

func (c *container) ReadItem(ctx context.Context, id, partitionKey string) ([]byte, error) {
	resp, err := c.client.ReadItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), id, nil)
	if err != nil {
		return nil, translateError(c.name, "read", id, err)
	}
	return resp.Value, nil
}

func (c *container) CreateItem(ctx context.Context, partitionKey string, item []byte) ([]byte, error) {
	resp, err := c.client.CreateItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), item, writeOptions)
	if err != nil {
		return nil, translateError(c.name, "create", "", err)
	}
	return resp.Value, nil
}

func (c *container) UpsertItem(ctx context.Context, partitionKey string, item []byte) ([]byte, error) {
	resp, err := c.client.UpsertItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), item, writeOptions)
	if err != nil {
		return nil, translateError(c.name, "upsert", "", err)
	}
	return resp.Value, nil
}

func (c *container) DeleteItem(ctx context.Context, id, partitionKey string) error {
	_, err := c.client.DeleteItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), id, nil)
	if err != nil {
		return translateError(c.name, "delete", id, err)
	}
	return nil
}

func (c *container) QueryItems(query store.Query, opts store.QueryOptions) store.Cursor {
	qo := &azcosmos.QueryOptions{
		ContinuationToken: opts.ContinuationToken,
	}
	if opts.PageSizeHint > 0 {
		qo.PageSizeHint = opts.PageSizeHint
	}
	for _, p := range query.Parameters {
		qo.QueryParameters = append(qo.QueryParameters, azcosmos.QueryParameter{
			Name:  p.Name,
			Value: p.Value,
		})
	}

	// The empty partition key runs the query across all partitions.
	pager := c.client.NewQueryItemsPager(buildQueryText(query.Filter), azcosmos.PartitionKey{}, qo)
	return &cursor{name: c.name, pager: pager}
}

// buildQueryText renders a filter into a full query against the document
// root alias "c".
func buildQueryText(filter string) string {
	if filter == "" {
		return "SELECT * FROM c"
	}
	return "SELECT * FROM c WHERE " + filter
}

// translateError maps service responses onto the repository error taxonomy:
// 404 to NotFound, 409 to Conflict, anything else to StoreError.
// Cancellation passes through untranslated.
func translateError(containerName, op, id string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusNotFound:
			return repoerrors.NewNotFoundError(containerName, id)
		case http.StatusConflict:
			return repoerrors.NewConflictError(containerName, id)
		}
	}

	return repoerrors.NewStoreError(op, err)
}
