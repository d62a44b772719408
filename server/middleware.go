package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

type ctxKey struct{}

// RequestID returns the ID assigned by the middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// HTTPObserver records request handling time.
type HTTPObserver interface {
	ObserveHTTP(ctx context.Context, method, path string, status int, elapsed time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.written = true
	return r.ResponseWriter.Write(b)
}

// Middleware assigns a request ID (reusing an incoming X-Request-ID),
// recovers panics into a 500, records the request duration and writes one
// access log line per request. obs may be nil.
func Middleware(logger logrus.FieldLogger, obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)
			ctx := context.WithValue(r.Context(), ctxKey{}, id)
			r = r.WithContext(ctx)

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			log := logger.WithFields(logrus.Fields{
				"request_id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
			})

			defer func() {
				if p := recover(); p != nil {
					log.WithField("panic", fmt.Sprint(p)).Error("handler panicked")
					if !rec.written {
						_ = jsonError(rec, http.StatusInternalServerError, "Internal server error")
					} else {
						rec.statusCode = http.StatusInternalServerError
					}
				}

				elapsed := time.Since(start)
				if obs != nil {
					obs.ObserveHTTP(ctx, r.Method, r.URL.Path, rec.statusCode, elapsed)
				}
				log.WithFields(logrus.Fields{
					"status":   rec.statusCode,
					"duration": elapsed,
				}).Info("request completed")
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
