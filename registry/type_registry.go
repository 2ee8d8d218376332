/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// typeNameRegistry holds the mapping from a Go type to its canonical
// discriminator name. Types without an explicit registration fall back to
// the struct name.
var (
	typeNameRegistry = make(map[reflect.Type]string)
	mu               sync.RWMutex
)

// RegisterTypeName associates a Go type T with a canonical discriminator name.
// If a name is already registered for T, it panics to prevent accidental overrides.
func RegisterTypeName[T any](name string) {
	t := typeOf[T]()

	mu.Lock()
	defer mu.Unlock()
	if existing, exists := typeNameRegistry[t]; exists {
		panic(fmt.Sprintf("type registry: %v already registered as %q", t, existing))
	}
	typeNameRegistry[t] = name
}

// TypeName returns the canonical discriminator name for type T: the
// registered override if one exists, otherwise the bare struct name.
func TypeName[T any]() string {
	t := typeOf[T]()

	mu.RLock()
	name, ok := typeNameRegistry[t]
	mu.RUnlock()
	if ok {
		return name
	}
	return t.Name()
}

func typeOf[T any]() reflect.Type {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
