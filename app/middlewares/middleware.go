package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/karavella/fabric-catalog/app/helpers"
	"github.com/karavella/fabric-catalog/app/utils/sessions"
)

// SessionUserMiddleware resolves the logged-in staff id from the session
// cookie and stores it on the request context. It never blocks a request;
// gating is the job of the auth middlewares further down the chain.
func SessionUserMiddleware(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := store.GetUserID(r)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware writes one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
