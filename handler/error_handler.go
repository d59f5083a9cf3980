package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/DavidL050/Forex/common"
	"github.com/DavidL050/Forex/logger"
	"github.com/sirupsen/logrus"
)

const unexpectedErrorMessage = "An unexpected error occurred."

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// Recoverer turns a panic anywhere below it into a 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Log.WithFields(logrus.Fields{
				"panic": rec,
				"path":  r.URL.Path,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")

			common.WriteJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   fmt.Sprint(rec),
				"message": unexpectedErrorMessage,
			})
		}()

		next.ServeHTTP(w, r)
	})
}

// internalError is the catch-all for faults no handler maps explicitly.
func internalError(err error) *common.AppError {
	return common.NewAppError(http.StatusInternalServerError, unexpectedErrorMessage, err).
		WithBody(map[string]string{
			"error":   err.Error(),
			"message": unexpectedErrorMessage,
		})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusNotFound, map[string]string{
		"error": "Endpoint not found",
		"path":  r.URL.Path,
	})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "Method not allowed",
		"path":  r.URL.Path,
	})
}
