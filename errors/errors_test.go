/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("widgets", "123")

	// Test error message
	expected := `item "123" not found in container "widgets"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("widgets", "abc")

	// Test error message
	expected := `item "abc" already exists in container "widgets"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrConflict) {
		t.Error("ConflictError should match ErrConflict")
	}

	// Test helper function
	if !IsConflict(err) {
		t.Error("IsConflict should return true for ConflictError")
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("request rate too large")
	err := NewStoreError("query", cause)

	expected := `store query failed: request rate too large`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrStore) {
		t.Error("StoreError should match ErrStore")
	}

	if !IsStore(err) {
		t.Error("IsStore should return true for StoreError")
	}

	// The underlying cause must stay reachable
	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to its cause")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "id",
			message:  "must be set",
			expected: `validation failed for field "id": must be set`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "item is nil",
			expected: `validation failed: item is nil`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestWrappedErrorsStayDetectable(t *testing.T) {
	err := fmt.Errorf("get widget: %w", NewNotFoundError("widgets", "123"))

	if !IsNotFound(err) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
	if IsConflict(err) {
		t.Error("IsConflict should not match a wrapped NotFoundError")
	}
}
