// Package server is the HTTP boundary of the scorer: it decodes score
// requests, maps scoring errors to statuses and serves health and metrics.
package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
)

// Scorer grades one transcript.
type Scorer interface {
	Score(transcript string, duration int) (*scoring.Result, error)
}

type Handler struct {
	scorer          Scorer
	defaultDuration int
	maxBodyBytes    int64
	logger          logrus.FieldLogger
}

func NewHandler(scorer Scorer, defaultDuration int, maxBodyBytes int64, logger logrus.FieldLogger) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &Handler{
		scorer:          scorer,
		defaultDuration: defaultDuration,
		maxBodyBytes:    maxBodyBytes,
		logger:          logger,
	}
}

// HandleScore scores {"transcript": ..., "duration": ...}. The duration is
// resolved before the transcript is checked, so a malformed duration fails
// even alongside a blank transcript.
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithField("request_id", RequestID(r.Context()))

	raw, err := decodeJSON(r, h.maxBodyBytes, w)
	if err != nil {
		log.WithError(err).Debug("decode score request")
		handleError(w, err)
		return
	}
	req, err := parseScoreRequest(raw)
	if err != nil {
		log.WithError(err).Warn("parse score request")
		handleError(w, err)
		return
	}
	duration, err := parseDuration(req.Duration, h.defaultDuration)
	if err != nil {
		log.WithError(err).Warn("parse duration")
		handleError(w, err)
		return
	}
	text, err := transcriptText(req.Transcript)
	if err != nil {
		log.WithError(err).Warn("parse transcript")
		handleError(w, err)
		return
	}

	res, err := h.scorer.Score(text, duration)
	if err != nil {
		if scoring.IsValidation(err) {
			log.WithError(err).Debug("rejected transcript")
		} else {
			log.WithError(err).Error("score transcript")
		}
		handleError(w, err)
		return
	}

	log.WithFields(logrus.Fields{
		"overall":  res.OverallScore,
		"words":    res.WordCount,
		"duration": duration,
	}).Info("transcript scored")
	if err := jsonResponse(w, http.StatusOK, res); err != nil {
		log.WithError(err).Warn("write score response")
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	_ = jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
