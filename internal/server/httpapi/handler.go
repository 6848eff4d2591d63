package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// appHandler is a handler that reports failures by returning an error
// instead of writing the response itself. makeHandler turns the error into
// the JSON failure envelope.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// apiError carries the HTTP status and client-facing message for a failed
// request, optionally with field-level validation detail and a wrapped
// cause for the log.
type apiError struct {
	code    int
	message string
	fields  []FieldError
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.cause }

func errBadRequest(message string) *apiError {
	return &apiError{code: http.StatusBadRequest, message: message}
}

func errValidation(fields []FieldError) *apiError {
	return &apiError{code: http.StatusBadRequest, message: "Validation failed", fields: fields}
}

func errUnauthorized(message string) *apiError {
	return &apiError{code: http.StatusUnauthorized, message: message}
}

func errForbidden(message string) *apiError {
	return &apiError{code: http.StatusForbidden, message: message}
}

func errNotFound(message string) *apiError {
	return &apiError{code: http.StatusNotFound, message: message}
}

// makeHandler adapts an appHandler to http.HandlerFunc. An *apiError is
// rendered as-is; anything else becomes a 500 with a generic message, the
// detail going to the log only.
func makeHandler(log logging.Logger, handler appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}

		var apiErr *apiError
		if errors.As(err, &apiErr) {
			if apiErr.code >= http.StatusInternalServerError {
				log.Error(r.Context(), "request failed",
					"method", r.Method, "path", r.URL.Path, "status", apiErr.code, "error", err)
			} else {
				log.Debug(r.Context(), "client error",
					"method", r.Method, "path", r.URL.Path, "status", apiErr.code, "error", err)
			}
			respondFailure(w, apiErr.code, apiErr.message, apiErr.fields)
			return
		}

		log.Error(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "status", http.StatusInternalServerError, "error", err)
		respondFailure(w, http.StatusInternalServerError, "Server error", nil)
	}
}
