package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO runs struct-tag validation. The raw validator error is returned
// so the response layer can classify it as a bad request.
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
