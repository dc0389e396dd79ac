// Package repository implements the persistence layer for both services.
// Each repository wraps an injected *gorm.DB and maps store-level failures
// to the sentinel errors below so handlers can pick response codes with
// errors.Is instead of inspecting driver messages.
package repository

import "errors"

var (
	// ErrNotFound means no row matched the given id or email.
	ErrNotFound = errors.New("record not found")
	// ErrNameExists means a cafe with that name is already registered.
	ErrNameExists = errors.New("cafe name already exists")
	// ErrEmailExists means a user with that email is already registered.
	ErrEmailExists = errors.New("email already exists")
	// ErrEmptyTable means an operation needed at least one row and found none.
	ErrEmptyTable = errors.New("table is empty")
)
