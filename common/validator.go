package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode decodes the request body into payload and runs its
// validation tags. Failures come back as a 400 AppError so every bad request
// shares one error envelope.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
	}

	if err := validate.Struct(payload); err != nil {
		return NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	return nil
}
