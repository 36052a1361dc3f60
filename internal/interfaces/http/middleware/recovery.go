package middleware

import (
	"fmt"
	"net/http"

	"github.com/MostroP2P/mostro-score-web/pkg/logger"
)

// Recovery converts handler panics into 500 responses; a single bad
// request must not take the process down.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic while serving request", fmt.Errorf("%v", rec),
						"method", r.Method,
						"path", r.URL.Path,
					)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
