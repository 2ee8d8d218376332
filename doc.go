/*
Package cosmosrepository provides a typed data-access layer over a
partitioned, schema-flexible document store, with Azure Cosmos DB as the
shipped backend.

Callers perform CRUD and predicate queries against named containers through
a generic Repository, while the library handles partition-key defaulting,
type-discriminator filtering, continuation-token pagination and concurrent
batch writes.

Key Features:
  - Type-safe operations using Go generics
  - Heterogeneous containers: a type-discriminator clause is conjoined with
    every query, so each repository only yields documents of its own type
  - Partition key defaults to the item id, overridable per call
  - Paged queries with request-charge accounting and resumable
    continuation tokens
  - Concurrent batch create/update with input-order results
  - Semantic error types (NotFound, Conflict, StoreError)
  - In-memory mock store for testing

Basic Usage:

	type Widget struct {
	    cosmosrepository.Document
	    Price float64 `json:"price"`
	}

	cfg, _ := config.FromEnv()
	st, _ := cosmos.NewStore(cfg)
	repo := cosmosrepository.New[Widget](st)

	w := Widget{Document: cosmosrepository.NewDocument("Widget"), Price: 20}
	created, err := repo.Create(ctx, "widgets", w)

	expensive, err := repo.Find(ctx, "widgets", &store.Query{
	    Filter:     `c["price"] > @min`,
	    Parameters: []store.QueryParameter{{Name: "@min", Value: 10}},
	})

Batch operations are non-atomic: all units of work are issued concurrently
and joined; the first failure fails the batch without rolling back siblings
that already succeeded.

For more information, see the documentation at https://github.com/rclarkdev/CosmosRepository
*/
package cosmosrepository
