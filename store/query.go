/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package store

// Query is a parameterized filter over item fields. Filter is the body of a
// WHERE clause against the document root alias "c", for example:
//
//	store.Query{
//	    Filter:     `c["price"] > @minPrice`,
//	    Parameters: []store.QueryParameter{{Name: "@minPrice", Value: 10}},
//	}
//
// An empty Filter matches everything. The repository conjoins every query
// with a type-discriminator clause before execution; the parameter name
// "@__type" is reserved for that clause.
type Query struct {
	Filter     string
	Parameters []QueryParameter
}

// QueryParameter binds a named placeholder in a query filter to a value.
type QueryParameter struct {
	Name  string
	Value any
}

// QueryOptions configures one query execution.
type QueryOptions struct {
	// PageSizeHint caps the number of items the store returns per fetch.
	// Zero lets the store choose.
	PageSizeHint int32

	// ContinuationToken resumes a previously started paged query.
	ContinuationToken *string
}
