package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
)

// HTTPError is a request failure with the status it maps to.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// statusFor maps an error to its response status. Validation failures are
// the client's; everything else is a server error carrying the message.
func statusFor(err error) (int, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	if scoring.IsValidation(err) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}

func handleError(w http.ResponseWriter, err error) {
	code, msg := statusFor(err)
	jsonError(w, code, msg)
}

func jsonResponse(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, status int, message string) error {
	return jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
