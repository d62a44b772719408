package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
)

// --- Score (/score) ---
type ScoreReq struct {
	Transcript string `json:"transcript"`
	Duration   *int   `json:"duration,omitempty"` // nil lets the server apply its default
}

// APIError is a non-200 answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("score %d: %s", e.Status, e.Message)
}

func (h *HTTP) Score(ctx context.Context, baseURL string, in ScoreReq) (*scoring.Result, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	url := strings.TrimRight(baseURL, "/") + "/score"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	var out scoring.Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("score decode: %w", err)
	}
	return &out, nil
}

// errorMessage extracts {"error": ...} from body, or returns the body.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
