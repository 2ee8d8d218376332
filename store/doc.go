/*
Package store defines the collaborator interfaces CosmosRepository is built
against.

The main interfaces are Store, Container and Cursor:

	type Store interface {
	    Container(name string) (Container, error)
	}

	type Container interface {
	    ReadItem(ctx context.Context, id, partitionKey string) ([]byte, error)
	    CreateItem(ctx context.Context, partitionKey string, item []byte) ([]byte, error)
	    UpsertItem(ctx context.Context, partitionKey string, item []byte) ([]byte, error)
	    DeleteItem(ctx context.Context, id, partitionKey string) error
	    QueryItems(query Query, opts QueryOptions) Cursor
	}

	type Cursor interface {
	    More() bool
	    Fetch(ctx context.Context) (Batch, error)
	    Close()
	}

Implementations:
  - cosmos: Azure Cosmos DB implementation over the azcosmos SDK
  - mock: in-memory implementation for testing

Documents cross these interfaces as raw JSON so that a single container can
hold heterogeneous shapes; the repository layer owns typed encoding and the
type-discriminator convention.
*/
package store
