package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

var stripNewlines = strings.NewReplacer("\n", "", "\r", "").Replace

// Logger logs one line per request: request id, method, path, status,
// response size and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		// Method and path are caller controlled, strip CR/LF before logging
		//nolint:gosec // G706: sanitized above
		log.Printf(
			"[%s] %s %s %d %dB %s",
			chimiddleware.GetReqID(r.Context()),
			stripNewlines(r.Method),
			stripNewlines(r.URL.Path),
			status,
			ww.BytesWritten(),
			time.Since(start),
		)
	})
}
