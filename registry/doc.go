/*
Package registry manages discriminator names for CosmosRepository.

Every document written through the repository carries a "type" attribute
naming its logical entity kind, so heterogeneous shapes can share one
container. The registry maps Go types to those canonical names:

	registry.RegisterTypeName[WidgetV2]("Widget")

Types without an explicit registration use their bare struct name, which is
the right answer for almost every caller. Overrides exist for renamed types
that must keep reading documents written under the old discriminator.

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
