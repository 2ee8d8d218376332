/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package cosmosrepository

import (
	"github.com/google/uuid"
)

// Item is the contract every stored entity must satisfy: a unique identifier,
// a type discriminator, and a partition-key projection.
type Item interface {
	// ItemID returns the globally unique identifier. Immutable after creation.
	ItemID() string

	// TypeName returns the type discriminator. Empty for legacy documents
	// written before the discriminator convention.
	TypeName() string

	// PartitionKeyValue returns the value used to route the document to a
	// physical partition. Commonly equal to ItemID unless the embedding type
	// overrides it.
	PartitionKeyValue() string
}

// Document is the embeddable base for stored entities. It carries the id and
// type-discriminator fields and projects the id as the partition key; types
// partitioned on another field shadow PartitionKeyValue.
type Document struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// NewDocument mints a Document with a fresh UUID and the given discriminator.
func NewDocument(typeName string) Document {
	return Document{
		ID:   uuid.NewString(),
		Type: typeName,
	}
}

func (d Document) ItemID() string {
	return d.ID
}

func (d Document) TypeName() string {
	return d.Type
}

func (d Document) PartitionKeyValue() string {
	return d.ID
}

// Logger records failed store operations. It is purely observational; the
// repository logs and then returns the error unchanged.
type Logger interface {
	Error(err error, msg string)
}
