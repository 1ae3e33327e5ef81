// Package validation implements the pure input checks for user records:
// create/update input validation, search-query validation and the
// case-insensitive email uniqueness rule.
//
// Results are returned as []models.ValidationError; an empty slice means
// valid. At most one error is reported per field (the first applicable rule
// wins), and fields are reported in input order: name first, then email.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

// emailShapeRe is a deliberately simple shape check: one '@' with
// non-whitespace, non-'@' characters around it and a dot in the domain part.
// It is not a full RFC 5322 parser.
var emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator wraps go-playground/validator with the email_shape rule
// registered. Construct it once and share it; it is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// the closure cannot fail, RegisterValidation only errors on empty tags
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShapeRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// ValidateCreate checks a create input against the field rules and the set
// of existing lowercased emails. Inputs are trimmed before checking, so
// whitespace-only names are rejected as missing.
func (va *Validator) ValidateCreate(in models.CreateUserInput, existingEmails map[string]struct{}) []models.ValidationError {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	errs := va.translate(va.v.Struct(in))

	if models.FieldError(errs, "email") == "" {
		if _, taken := existingEmails[strings.ToLower(in.Email)]; taken {
			errs = append(errs, models.ValidationError{Field: "email", Message: "email is already in use"})
		}
	}
	return errs
}

// ValidateUpdate checks a partial update. Only non-nil fields are validated.
// The uniqueness check skips the record's own current email so that saving
// a record with its unchanged address (in any casing) succeeds.
func (va *Validator) ValidateUpdate(in models.UpdateUserInput, existingEmails map[string]struct{}, currentEmail string) []models.ValidationError {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if in.Email != nil {
		trimmed := strings.TrimSpace(*in.Email)
		in.Email = &trimmed
	}

	errs := va.translate(va.v.Struct(in))

	if in.Email != nil && models.FieldError(errs, "email") == "" {
		candidate := strings.ToLower(*in.Email)
		if candidate != strings.ToLower(currentEmail) {
			if _, taken := existingEmails[candidate]; taken {
				errs = append(errs, models.ValidationError{Field: "email", Message: "email is already in use"})
			}
		}
	}
	return errs
}

// ValidateSearchQuery rejects queries longer than 100 characters.
func (va *Validator) ValidateSearchQuery(query string) []models.ValidationError {
	rules := struct {
		Query string `validate:"max=100"`
	}{Query: query}

	if err := va.v.Struct(rules); err != nil {
		return []models.ValidationError{{Field: "search", Message: "search query must be 100 characters or fewer"}}
	}
	return nil
}

// translate converts validator errors into field-scoped messages. Fields come
// back in struct declaration order, which matches the required reporting
// order (name before email).
func (va *Validator) translate(err error) []models.ValidationError {
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens for non-struct input, which
		// would be a programming error here
		return []models.ValidationError{{Field: "input", Message: err.Error()}}
	}

	out := make([]models.ValidationError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, models.ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldMessage converts a single validator error into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		if field == "name" {
			return "name must be between 1 and 50 characters"
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email_shape":
		return "email must be a valid email address"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
