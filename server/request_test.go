package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"http error", &HTTPError{Code: http.StatusUnsupportedMediaType, Message: "nope"}, 415, "nope"},
		{"validation", &scoring.ValidationError{Message: scoring.MsgEmptyTranscript}, 400, scoring.MsgEmptyTranscript},
		{"computation", scoring.NewComputationError("duration: bad"), 500, "duration: bad"},
		{"other", assert.AnError, 500, assert.AnError.Error()},
	}
	for _, tt := range tests {
		code, msg := statusFor(tt.err)
		assert.Equal(t, tt.code, code, tt.name)
		assert.Equal(t, tt.msg, msg, tt.name)
	}
}

func TestParseDuration_Absent(t *testing.T) {
	t.Parallel()

	d, err := parseDuration(nil, 52)
	require.NoError(t, err)
	assert.Equal(t, 52, d)

	d, err = parseDuration(json.RawMessage(`"-7"`), 52)
	require.NoError(t, err)
	assert.Equal(t, -7, d)

	_, err = parseDuration(json.RawMessage(`"1_000"`), 52)
	require.Error(t, err)
	var ce *scoring.ComputationError
	assert.ErrorAs(t, err, &ce)
}

func TestTranscriptText(t *testing.T) {
	t.Parallel()

	s, err := transcriptText(nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = transcriptText(json.RawMessage(`"Hi.\nThanks"`))
	require.NoError(t, err)
	assert.Equal(t, "Hi.\nThanks", s)

	_, err = transcriptText(json.RawMessage(`["a"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got array")
}
