// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"time"

	"github.com/katalvlaran/crntk/internal/logging"
)

// statusWriter captures the status code and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err
}

// requestLogging logs one line per request: 5xx at Error, 4xx at Warn, the
// rest at Debug.
func requestLogging(log logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		fields := []logging.Field{
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", sw.status),
			logging.Int("bytes", sw.bytes),
			logging.Duration("took", time.Since(start)),
		}
		switch {
		case sw.status >= 500:
			log.Error("request", fields...)
		case sw.status >= 400:
			log.Warn("request", fields...)
		default:
			log.Debug("request", fields...)
		}
	})
}
