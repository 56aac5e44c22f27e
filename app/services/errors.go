package services

import (
	"errors"

	"gorm.io/gorm"
)

// NotFoundError signals an absent entity id.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError signals a uniqueness violation or a blocked category delete.
// ProductCount carries the number of referencing products on a blocked delete.
type ConflictError struct {
	Detail       string
	ProductCount int64
}

func (e *ConflictError) Error() string {
	return e.Detail
}

// ValidationError signals a malformed or out-of-range request parameter.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// translateDuplicate maps a store-level unique index violation to the given
// conflict. The index is the source of truth when two writers race past the
// service-level guard check.
func translateDuplicate(err error, conflict *ConflictError) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}
