// Package validator runs go-playground struct validation and reduces the
// result to the field -> failed-tag map that response.ErrorWithDetails
// serializes.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate returns nil when v satisfies its struct tags, otherwise a map
// from field name to the tag that failed.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
