package common

import (
	"encoding/json"
	"net/http"

	"github.com/DavidL050/Forex/logger"
	"github.com/sirupsen/logrus"
)

// AppError is returned by handlers and rendered by ErrorHandlingMiddleware.
// Body, when set, is written instead of the default {"message": ...} shape.
// Err is logged and never sent to the client.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	Body    any    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithBody replaces the response payload.
func (e *AppError) WithBody(body any) *AppError {
	e.Body = body
	return e
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	var payload any = e
	if e.Body != nil {
		payload = e.Body
	}
	WriteJSON(w, e.Code, payload)
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response body")
	}
}
