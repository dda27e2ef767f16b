package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens a binding failure into a field -> message map so
// forms can render errors inline. Non-validator errors come back under a
// single "body" key.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email"
		case "datetime":
			fields[name] = "has an invalid format"
		case "oneof":
			fields[name] = "must be one of: " + fe.Param()
		case "gt", "gte":
			fields[name] = "must be a positive number"
		case "max":
			fields[name] = "is too long"
		case "min":
			fields[name] = "must not be empty"
		default:
			fields[name] = "is invalid"
		}
	}
	return fields
}
