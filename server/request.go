package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
)

// scoreRequest holds the raw request fields. Their types are checked
// lazily, in the order the handler needs them.
type scoreRequest struct {
	Transcript json.RawMessage `json:"transcript"`
	Duration   json.RawMessage `json:"duration"`
}

func decodeJSON(r *http.Request, maxBytes int64, w http.ResponseWriter) (json.RawMessage, error) {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		return nil, &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	var raw json.RawMessage
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	if err := dec.Decode(&raw); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, &HTTPError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit),
			}
		}
		return nil, &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return raw, nil
}

// parseScoreRequest splits a JSON object into its fields. A body that is
// valid JSON but not an object cannot be scored.
func parseScoreRequest(raw json.RawMessage) (*scoreRequest, error) {
	if t := bytes.TrimSpace(raw); len(t) == 0 || t[0] != '{' {
		return nil, scoring.NewComputationError("request body must be a JSON object")
	}
	var req scoreRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, scoring.NewComputationError("request body: %v", err)
	}
	return &req, nil
}

// parseDuration converts the duration field to whole seconds. Absent means
// def. Numbers truncate toward zero, integer strings are parsed after
// trimming, and booleans count as 1 or 0. Anything else is an error.
func parseDuration(raw json.RawMessage, def int) (int, error) {
	if len(raw) == 0 {
		return def, nil
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, scoring.NewComputationError("duration: %v", err)
	}

	switch d := v.(type) {
	case json.Number:
		if n, err := d.Int64(); err == nil {
			return toInt(float64(n), d.String())
		}
		f, err := d.Float64()
		if err != nil {
			return 0, scoring.NewComputationError("duration: invalid number %s", d)
		}
		return toInt(math.Trunc(f), d.String())
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return 0, scoring.NewComputationError("duration: invalid integer %q", d)
		}
		return n, nil
	case bool:
		if d {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, scoring.NewComputationError("duration: must be a number, got null")
	default:
		return 0, scoring.NewComputationError("duration: must be a number, got %s", kind(v))
	}
}

func toInt(f float64, literal string) (int, error) {
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, scoring.NewComputationError("duration: %s out of range", literal)
	}
	return int(f), nil
}

// transcriptText returns the transcript field. Absent is the empty
// transcript; a non-string is an error.
func transcriptText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", scoring.NewComputationError("transcript: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		return "", scoring.NewComputationError("transcript: must be a string, got %s", kind(v))
	}
	return s, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}
