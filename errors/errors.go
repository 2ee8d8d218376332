/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when the targeted id/partition-key pair does not exist
	ErrNotFound = errors.New("item not found")

	// ErrConflict is returned when a create collides with an existing id/partition-key pair
	ErrConflict = errors.New("item already exists")

	// ErrStore is returned for any other failure reported by the store transport
	ErrStore = errors.New("store operation failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when an item is not found
type NotFoundError struct {
	Container string
	ID        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found in container %q", e.ID, e.Container)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError represents an error when an item with the same id and
// partition key already exists
type ConflictError struct {
	Container string
	ID        string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("item %q already exists in container %q", e.ID, e.Container)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// StoreError wraps any other failure from the store transport (timeout,
// throttling, malformed query, authorization). The underlying cause is
// preserved for unwrapping.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(container, id string) error {
	return &NotFoundError{Container: container, ID: id}
}

// NewConflictError creates a new ConflictError
func NewConflictError(container, id string) error {
	return &ConflictError{Container: container, ID: id}
}

// NewStoreError creates a new StoreError wrapping the underlying cause
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsStore checks if an error is a store transport error
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
