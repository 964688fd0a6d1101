package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrProfileNotFound, ErrTaskNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a template with an existing task key).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUpdateFailed is returned when an update operation fails, for example
	// because the entity does not exist or the update violates constraints.
	ErrUpdateFailed = errors.New("update failed")

	// ErrDeleteFailed is returned when a delete operation fails, for example
	// because the entity does not exist or is referenced by other entities.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrUnsupportedColumn is returned when an insert references a column
	// the deployed schema does not have. Callers retry with a reduced field
	// set; the engine itself stays agnostic to schema drift and always emits
	// the full task shape.
	ErrUnsupportedColumn = errors.New("unsupported column")

	// Entity-specific "not found" errors

	// ErrProfileNotFound indicates that the requested household profile does
	// not exist in the store.
	ErrProfileNotFound = fmt.Errorf("%w: household profile", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrTemplateNotFound indicates that the requested task template does not
	// exist in the store.
	ErrTemplateNotFound = fmt.Errorf("%w: task template", ErrNotFound)
)
