package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/ndewijer/portfolio-json-api/internal/api/response"
)

// Recoverer converts a panic in any downstream handler into a 500 envelope
// carrying the panic message. http.ErrAbortHandler is re-raised so net/http
// can abort the connection as intended.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:errorlint // sentinel comparison mirrors net/http
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rvr, debug.Stack())

			response.RespondError(w, http.StatusInternalServerError, response.MsgInternalServerError, panicMessage(rvr))
		}()

		next.ServeHTTP(w, r)
	})
}

func panicMessage(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}
