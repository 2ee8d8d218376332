/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

// Package mock provides in-memory implementations of the store interfaces
// for testing.
package mock

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/rclarkdev/CosmosRepository/errors"
	"github.com/rclarkdev/CosmosRepository/store"
)

// Store is an in-memory store.Store. Containers are created on first
// resolution and shared by name.
type Store struct {
	mu           sync.Mutex
	containers   map[string]*Container
	containerErr error
}

// NewStore creates a new mock Store.
func NewStore() *Store {
	return &Store{
		containers: make(map[string]*Container),
	}
}

// WithContainerError makes Container resolution return an error.
func (s *Store) WithContainerError(err error) *Store {
	s.containerErr = err
	return s
}

// Container resolves a container by name, creating it when absent.
func (s *Store) Container(name string) (store.Container, error) {
	if s.containerErr != nil {
		return nil, s.containerErr
	}
	return s.ContainerNamed(name), nil
}

// ContainerNamed returns the concrete container for test setup and
// assertions. It is the same instance Container hands to the repository.
func (s *Store) ContainerNamed(name string) *Container {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[name]
	if !ok {
		c = &Container{
			name:       name,
			items:      make(map[string]map[string][]byte),
			createErrs: make(map[string]error),
			upsertErrs: make(map[string]error),
		}
		s.containers[name] = c
	}
	return c
}

// Call records one container operation and the key material it received.
type Call struct {
	Op           string
	ID           string
	PartitionKey string
}

// Container is an in-memory store.Container keyed by (partitionKey, id),
// with builder-style error and hook injection.
type Container struct {
	name string

	mu    sync.RWMutex
	items map[string]map[string][]byte // partitionKey -> id -> document

	calls   []Call
	queries []store.Query

	readErr    error
	deleteErr  error
	createErrs map[string]error
	upsertErrs map[string]error
	createHook func(id string)
	queryFunc  func(q store.Query, opts store.QueryOptions) store.Cursor
}

// WithReadError makes every ReadItem return an error.
func (c *Container) WithReadError(err error) *Container {
	c.readErr = err
	return c
}

// WithDeleteError makes every DeleteItem return an error.
func (c *Container) WithDeleteError(err error) *Container {
	c.deleteErr = err
	return c
}

// WithCreateError makes CreateItem fail for the given document id.
func (c *Container) WithCreateError(id string, err error) *Container {
	c.createErrs[id] = err
	return c
}

// WithUpsertError makes UpsertItem fail for the given document id.
func (c *Container) WithUpsertError(id string, err error) *Container {
	c.upsertErrs[id] = err
	return c
}

// WithCreateHook runs f before each create, outside the container lock.
// Tests use it to control completion timing.
func (c *Container) WithCreateHook(f func(id string)) *Container {
	c.createHook = f
	return c
}

// WithQueryFunc sets a custom query function; the default returns every
// stored document in one batch.
func (c *Container) WithQueryFunc(f func(q store.Query, opts store.QueryOptions) store.Cursor) *Container {
	c.queryFunc = f
	return c
}

// Seed stores a document without recording a call.
func (c *Container) Seed(id, partitionKey string, doc []byte) *Container {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(id, partitionKey, doc)
	return c
}

// SeedJSON marshals v and stores it under the given keys.
func (c *Container) SeedJSON(id, partitionKey string, v any) *Container {
	doc, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return c.Seed(id, partitionKey, doc)
}

func (c *Container) ReadItem(_ context.Context, id, partitionKey string) ([]byte, error) {
	c.record(Call{Op: "read", ID: id, PartitionKey: partitionKey})

	if c.readErr != nil {
		return nil, c.readErr
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.items[partitionKey][id]
	if !ok {
		return nil, errors.NewNotFoundError(c.name, id)
	}
	return doc, nil
}

func (c *Container) CreateItem(_ context.Context, partitionKey string, item []byte) ([]byte, error) {
	id := documentID(item)
	c.record(Call{Op: "create", ID: id, PartitionKey: partitionKey})

	if c.createHook != nil {
		c.createHook(id)
	}
	if err := c.createErrs[id]; err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[partitionKey][id]; exists {
		return nil, errors.NewConflictError(c.name, id)
	}
	c.put(id, partitionKey, item)
	return item, nil
}

func (c *Container) UpsertItem(_ context.Context, partitionKey string, item []byte) ([]byte, error) {
	id := documentID(item)
	c.record(Call{Op: "upsert", ID: id, PartitionKey: partitionKey})

	if err := c.upsertErrs[id]; err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(id, partitionKey, item)
	return item, nil
}

func (c *Container) DeleteItem(_ context.Context, id, partitionKey string) error {
	c.record(Call{Op: "delete", ID: id, PartitionKey: partitionKey})

	if c.deleteErr != nil {
		return c.deleteErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[partitionKey][id]; !ok {
		return errors.NewNotFoundError(c.name, id)
	}
	delete(c.items[partitionKey], id)
	return nil
}

func (c *Container) QueryItems(q store.Query, opts store.QueryOptions) store.Cursor {
	c.mu.Lock()
	c.queries = append(c.queries, q)
	c.mu.Unlock()

	if c.queryFunc != nil {
		return c.queryFunc(q, opts)
	}

	// Default: everything in one batch, in stable id order.
	c.mu.RLock()
	defer c.mu.RUnlock()

	type keyed struct {
		id  string
		doc []byte
	}
	var all []keyed
	for _, byID := range c.items {
		for id, doc := range byID {
			all = append(all, keyed{id, doc})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })

	batch := store.Batch{RequestCharge: 1}
	for _, k := range all {
		batch.Items = append(batch.Items, k.doc)
	}
	return NewCursor(batch)
}

// Calls returns a copy of the recorded operations.
func (c *Container) Calls() []Call {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Call(nil), c.calls...)
}

// Queries returns a copy of the queries received.
func (c *Container) Queries() []store.Query {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]store.Query(nil), c.queries...)
}

// Has reports whether a document exists under the given keys.
func (c *Container) Has(id, partitionKey string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[partitionKey][id]
	return ok
}

func (c *Container) record(call Call) {
	c.mu.Lock()
	c.calls = append(c.calls, call)
	c.mu.Unlock()
}

// put assumes the caller holds the write lock.
func (c *Container) put(id, partitionKey string, doc []byte) {
	byID, ok := c.items[partitionKey]
	if !ok {
		byID = make(map[string][]byte)
		c.items[partitionKey] = byID
	}
	byID[id] = append([]byte(nil), doc...)
}

// documentID extracts the id field from an encoded document.
func documentID(doc []byte) string {
	var probe struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(doc, &probe)
	return probe.ID
}
