/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmosrepository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rclarkdev/CosmosRepository/errors"
	"github.com/rclarkdev/CosmosRepository/logging"
	"github.com/rclarkdev/CosmosRepository/registry"
	"github.com/rclarkdev/CosmosRepository/store"
)

// Repository provides typed CRUD and predicate queries for T against named
// containers of a document store. It holds no state beyond its collaborators
// and a container-handle cache, and is safe for concurrent use.
type Repository[T Item] struct {
	store  store.Store
	logger Logger

	mu         sync.RWMutex
	containers map[string]store.Container
}

// New creates a Repository for type T over the given store.
func New[T Item](s store.Store, opts ...Option) *Repository[T] {
	cfg := settings{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Repository[T]{
		store:      s,
		logger:     cfg.logger,
		containers: make(map[string]store.Container),
	}
}

// container resolves a container handle by name, caching it for reuse.
func (r *Repository[T]) container(name string) (store.Container, error) {
	r.mu.RLock()
	c, ok := r.containers[name]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	c, err := r.store.Container(name)
	if err != nil {
		r.logger.Error(err, "failed to resolve container")
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.containers[name]; ok {
		return existing, nil
	}
	r.containers[name] = c
	return c, nil
}

// Get retrieves a single item by id. The partition key defaults to the id
// unless WithPartitionKey is given.
func (r *Repository[T]) Get(ctx context.Context, containerName, id string, opts ...ItemOption) (T, error) {
	var zero T

	c, err := r.container(containerName)
	if err != nil {
		return zero, err
	}

	raw, err := c.ReadItem(ctx, id, resolvePartitionKey(id, opts))
	if err != nil {
		r.logger.Error(err, "failed to read item")
		return zero, err
	}

	return decodeItem[T](raw)
}

// Find returns every item of type T matching the query. A nil query matches
// all items of the type. The caller's filter is always conjoined with the
// type-discriminator clause.
func (r *Repository[T]) Find(ctx context.Context, containerName string, q *store.Query) ([]T, error) {
	c, err := r.container(containerName)
	if err != nil {
		return nil, err
	}

	cur := c.QueryItems(composeFilter(registry.TypeName[T](), q), store.QueryOptions{})
	items, err := collectAll[T](ctx, cur)
	if err != nil {
		r.logger.Error(err, "query failed")
		return nil, err
	}
	return items, nil
}

// FindPage returns at most pageSize matching items, the cumulative request
// charge of the batches fetched to fill the page, and a continuation token
// to resume from. Pass the previous page's token (nil for the first page).
func (r *Repository[T]) FindPage(ctx context.Context, containerName string, q *store.Query, pageSize int, continuation *string) (*Page[T], error) {
	if pageSize < 1 {
		return nil, errors.NewValidationError("pageSize", "must be positive")
	}

	c, err := r.container(containerName)
	if err != nil {
		return nil, err
	}

	cur := c.QueryItems(composeFilter(registry.TypeName[T](), q), store.QueryOptions{
		PageSizeHint:      int32(pageSize),
		ContinuationToken: continuation,
	})

	items, charge, token, err := collectPage[T](ctx, cur, pageSize)
	if err != nil {
		r.logger.Error(err, "paged query failed")
		return nil, err
	}

	return &Page[T]{
		Items:             items,
		RequestCharge:     charge,
		ContinuationToken: token,
	}, nil
}

// Create stores a new item and returns it as the store persisted it. The id
// must be set by the caller; the store does not generate one.
func (r *Repository[T]) Create(ctx context.Context, containerName string, item T) (T, error) {
	var zero T

	partitionKey, body, err := r.encode(item)
	if err != nil {
		return zero, err
	}

	c, err := r.container(containerName)
	if err != nil {
		return zero, err
	}

	raw, err := c.CreateItem(ctx, partitionKey, body)
	if err != nil {
		r.logger.Error(err, "failed to create item")
		return zero, err
	}

	return decodeItem[T](raw)
}

// CreateAll creates every item concurrently, one unit of work per item, and
// returns the created items in input order. The first failure fails the
// whole batch and cancels the shared context for in-flight siblings;
// already-created items are NOT rolled back.
func (r *Repository[T]) CreateAll(ctx context.Context, containerName string, items []T) ([]T, error) {
	return r.fanOut(ctx, items, func(ctx context.Context, item T) (T, error) {
		return r.Create(ctx, containerName, item)
	})
}

// Update replaces an item wholesale. It is an upsert: the item is created
// when absent. Partial patching is not supported.
func (r *Repository[T]) Update(ctx context.Context, containerName string, item T) (T, error) {
	var zero T

	partitionKey, body, err := r.encode(item)
	if err != nil {
		return zero, err
	}

	c, err := r.container(containerName)
	if err != nil {
		return zero, err
	}

	raw, err := c.UpsertItem(ctx, partitionKey, body)
	if err != nil {
		r.logger.Error(err, "failed to upsert item")
		return zero, err
	}

	return decodeItem[T](raw)
}

// UpdateAll updates every item concurrently with the same batch semantics as
// CreateAll: input-order results, first failure aborts, no rollback.
func (r *Repository[T]) UpdateAll(ctx context.Context, containerName string, items []T) ([]T, error) {
	return r.fanOut(ctx, items, func(ctx context.Context, item T) (T, error) {
		return r.Update(ctx, containerName, item)
	})
}

// Delete removes an item by id. The partition key defaults to the id unless
// WithPartitionKey is given. A missing item surfaces as a NotFound error.
func (r *Repository[T]) Delete(ctx context.Context, containerName, id string, opts ...ItemOption) error {
	c, err := r.container(containerName)
	if err != nil {
		return err
	}

	if err := c.DeleteItem(ctx, id, resolvePartitionKey(id, opts)); err != nil {
		r.logger.Error(err, "failed to delete item")
		return err
	}
	return nil
}

// DeleteItem removes an item using the key material it carries.
func (r *Repository[T]) DeleteItem(ctx context.Context, containerName string, item T) error {
	id := item.ItemID()
	if id == "" {
		return errors.NewValidationError("id", "must be set")
	}
	return r.Delete(ctx, containerName, id, WithPartitionKey(itemPartitionKey(item)))
}

// Exists reports whether an item with the given id exists. A NotFound from
// the underlying read is translated to false; any other error propagates.
func (r *Repository[T]) Exists(ctx context.Context, containerName, id string, opts ...ItemOption) (bool, error) {
	c, err := r.container(containerName)
	if err != nil {
		return false, err
	}

	if _, err := c.ReadItem(ctx, id, resolvePartitionKey(id, opts)); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		r.logger.Error(err, "failed to read item")
		return false, err
	}
	return true, nil
}

// ExistsWhere reports whether any item of type T matches the query.
func (r *Repository[T]) ExistsWhere(ctx context.Context, containerName string, q *store.Query) (bool, error) {
	c, err := r.container(containerName)
	if err != nil {
		return false, err
	}

	cur := c.QueryItems(composeFilter(registry.TypeName[T](), q), store.QueryOptions{PageSizeHint: 1})
	items, _, _, err := collectPage[T](ctx, cur, 1)
	if err != nil {
		r.logger.Error(err, "query failed")
		return false, err
	}
	return len(items) > 0, nil
}

// fanOut runs op for every item concurrently and joins on all of them,
// preserving input-index correspondence in the results.
func (r *Repository[T]) fanOut(ctx context.Context, items []T, op func(context.Context, T) (T, error)) ([]T, error) {
	results := make([]T, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			result, err := op(gctx, item)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// encode validates the item's key material and marshals it, stamping the
// canonical discriminator into the payload when the item carries none.
func (r *Repository[T]) encode(item T) (partitionKey string, body []byte, err error) {
	if item.ItemID() == "" {
		return "", nil, errors.NewValidationError("id", "must be set before writing")
	}

	body, err = json.Marshal(item)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	if item.TypeName() == "" {
		body, err = stampType(body, registry.TypeName[T]())
		if err != nil {
			return "", nil, err
		}
	}

	return itemPartitionKey(item), body, nil
}

// itemPartitionKey projects an item's partition key, falling back to the id.
func itemPartitionKey(item Item) string {
	if pk := item.PartitionKeyValue(); pk != "" {
		return pk
	}
	return item.ItemID()
}

// stampType injects the discriminator into an encoded document.
func stampType(body []byte, typeName string) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to stamp type: %w", err)
	}

	encoded, err := json.Marshal(typeName)
	if err != nil {
		return nil, fmt.Errorf("failed to stamp type: %w", err)
	}
	doc["type"] = encoded

	return json.Marshal(doc)
}
