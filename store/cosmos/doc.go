/*
Package cosmos implements the store interfaces over Azure Cosmos DB using
the azcosmos SDK.

A Store wraps one database of one account; container handles are resolved by
name and cached. Service errors are mapped onto the repository error
taxonomy: HTTP 404 becomes a NotFound error, 409 a Conflict error, and
everything else a StoreError wrapping the SDK error. Cancellation passes
through untranslated.

Queries run cross-partition and surface the service's request charge and
continuation token on every fetched batch. Writes enable content response so
created and upserted documents round-trip as stored.

Retry and backoff for throttled requests are the SDK's responsibility; this
package adds none of its own.
*/
package cosmos
