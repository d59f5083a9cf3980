package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrInvalidBody is the cause attached when a request body is not valid JSON.
var ErrInvalidBody = errors.New("invalid request body")

// Validate runs struct-tag validation on v.
func Validate(v any) error {
	return validate.Struct(v)
}

// DecodeJSON decodes the JSON body into payload. Validation is left to the
// caller, which decides how a failure is reported.
func DecodeJSON(r *http.Request, payload any) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", errors.Join(ErrInvalidBody, err))
	}
	return nil
}
