package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/sleep-calculator/pkg/problem"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: request_id=%s %v\n%s", GetRequestID(r.Context()), err, debug.Stack())
				problem.InternalError("An unexpected error occurred").WithInstance(r.URL.Path).Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
