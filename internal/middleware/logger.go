package middleware

import (
	"net/http"
	"time"

	"github.com/GolfGuruApp/SwingAI-backend/internal/logger"
)

// responseWriter capture le code de statut pour le log
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware trace chaque requête avec durée et statut
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		logger.Request(r.Method, r.URL.Path, rw.statusCode, time.Since(start))
	})
}
