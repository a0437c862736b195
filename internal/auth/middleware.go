package auth

import (
	"context"
	"net/http"
)

type key int

const UserIDKey key = 0

// SessionCookie is the name of the cookie holding the session token.
const SessionCookie = "token"

// RequireSession guards protected routes: requests without a valid session
// token are redirected to the login page, everything else proceeds with the
// authenticated user id in the request context.
func RequireSession(jwtService *JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			userID, err := jwtService.ValidateToken(cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user id, or 0 when the
// request carries no session.
func GetUserIDFromContext(ctx context.Context) int {
	userID, ok := ctx.Value(UserIDKey).(int)
	if !ok {
		return 0
	}
	return userID
}
