package middleware

import (
	"log"
	"net/http"
	"time"
)

// Logger writes one line per request once the response is complete.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s request_id=%s",
			r.Method, r.URL.RequestURI(), rec.statusCode, time.Since(start).Round(time.Microsecond), GetRequestID(r.Context()))
	})
}
