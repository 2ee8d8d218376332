/*
Package errors provides semantic error types for the CosmosRepository library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("item not found")
	    ErrConflict     = errors.New("item already exists")
	    ErrStore        = errors.New("store operation failed")
	    ErrInvalidInput = errors.New("invalid input")
	)

Usage:

	// Check error type
	widget, err := repo.Get(ctx, "widgets", "123")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("widget %s does not exist", "123")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("widgets", "123")
	err := errors.NewConflictError("widgets", "123")
	err := errors.NewStoreError("query", cause)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
