package testmodels

import (
	"github.com/go-openapi/strfmt"

	cosmosrepository "github.com/rclarkdev/CosmosRepository"
)

// Widget is a simple catalog entity used by the repository tests.
type Widget struct {
	cosmosrepository.Document

	// Name of the widget.
	Name string `json:"name,omitempty"`

	// Price in whole currency units.
	Price float64 `json:"price,omitempty"`

	// Timestamp when the widget was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`

	// Timestamp when the widget was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty"`
}

// Order is partitioned by customer rather than by id, exercising explicit
// partition keys.
type Order struct {
	cosmosrepository.Document

	// CustomerID is the partition key for orders.
	CustomerID string `json:"customerId"`

	// Total order amount.
	Total float64 `json:"total,omitempty"`
}

// PartitionKeyValue routes orders by customer.
func (o Order) PartitionKeyValue() string {
	return o.CustomerID
}
