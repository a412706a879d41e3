package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/karavella/fabric-catalog/app/helpers"
	"github.com/karavella/fabric-catalog/app/repositories"
)

// StaffAuthMiddleware guards the admin pages: without a valid staff
// identity in the session the browser is sent to the login form.
func StaffAuthMiddleware(userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(helpers.ContextKeyUserID).(uint)
			if !ok || userID == 0 {
				log.Println("StaffAuthMiddleware: no user id in context. Redirecting to login.")
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("You must log in to manage the catalog."), http.StatusFound)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("StaffAuthMiddleware: error finding user %d: %v. Redirecting to login.", userID, err)
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("User not found or session invalid."), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UploadGateMiddleware is the authorization gate in front of the image
// upload endpoint. Without a resolvable identity the request is rejected
// outright and no file is accepted.
func UploadGateMiddleware(userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(helpers.ContextKeyUserID).(uint)
			if !ok || userID == 0 {
				log.Println("UploadGateMiddleware: upload rejected, no identity in session.")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"You must log in to upload images."}`))
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("UploadGateMiddleware: upload rejected, user %d not resolvable: %v", userID, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"User not found or session invalid."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
