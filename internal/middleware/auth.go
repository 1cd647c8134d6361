package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie under which the admin session lives.
const SessionName = "session"

// RequireAuth guards JSON API endpoints. Requests without a live admin
// session get a 401 before any handler or store code runs.
func RequireAuth(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authenticated(store, r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePage guards dashboard pages, redirecting anonymous visitors to the
// login page instead of returning a bare 401.
func RequirePage(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authenticated(store, r) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticated reports whether the request carries a live admin session.
func Authenticated(store *sessions.CookieStore, r *http.Request) bool {
	session, _ := store.Get(r, SessionName)
	return session.Values["user_id"] != nil
}
