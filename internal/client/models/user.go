// Package models defines the user record and the value types exchanged
// between the store, validation and the presentation layer.
package models

import "time"

// User is a single directory record.
//
// Invariants: ID is immutable once assigned; Email is stored trimmed and
// lowercased and is unique (case-insensitively) among live records;
// UpdatedAt never precedes CreatedAt.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateUserInput carries the fields required to create a record.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required,max=50"`
	Email string `json:"email" validate:"required,email_shape"`
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string `json:"name,omitempty" validate:"omitnil,required,max=50"`
	Email *string `json:"email,omitempty" validate:"omitnil,required,email_shape"`
}

// ValidationError is a field-scoped rejection reason. Validation results are
// always returned as slices of these values, never raised as panics; an
// empty slice means the input is valid.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldError returns the message for the given field, or "" when the field
// has no error. Handy for rendering per-field feedback next to inputs.
func FieldError(errs []ValidationError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Stats describes the visible portion of the collection for a search query.
// It is derived on every read and never persisted.
type Stats struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}
