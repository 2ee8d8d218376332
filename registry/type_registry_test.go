/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package registry

import "testing"

type plainWidget struct {
	ID string
}

type renamedWidget struct {
	ID string
}

type dupWidget struct {
	ID string
}

func TestTypeNameDefaultsToStructName(t *testing.T) {
	if got := TypeName[plainWidget](); got != "plainWidget" {
		t.Errorf("Expected %q, got %q", "plainWidget", got)
	}
}

func TestTypeNameIndirectsPointers(t *testing.T) {
	if got := TypeName[*plainWidget](); got != "plainWidget" {
		t.Errorf("Expected %q, got %q", "plainWidget", got)
	}
}

func TestRegisterTypeNameOverride(t *testing.T) {
	RegisterTypeName[renamedWidget]("Widget")

	if got := TypeName[renamedWidget](); got != "Widget" {
		t.Errorf("Expected %q, got %q", "Widget", got)
	}

	// Pointer lookups resolve to the same registration.
	if got := TypeName[*renamedWidget](); got != "Widget" {
		t.Errorf("Expected %q for pointer type, got %q", "Widget", got)
	}
}

func TestRegisterTypeNameDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on duplicate registration")
		}
	}()
	RegisterTypeName[dupWidget]("First")
	RegisterTypeName[dupWidget]("Second")
}
