package middleware

import (
	"net/http"
	"strconv"

	"github.com/dveras/focado/internal/auth"
	"github.com/dveras/focado/internal/store"
)

const userIDHeader = "X-User-ID"

// RequireUser resolves the client-supplied user id header against the user
// store and populates the auth context. Requests without a resolvable,
// active user get 401.
func RequireUser(users *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
			if err != nil || id <= 0 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(id)
			if err != nil || user == nil || !user.IsActive {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			uc := auth.UserContext{
				UserID:   user.ID,
				Username: user.Username,
			}

			ctx := auth.WithUser(r.Context(), uc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
