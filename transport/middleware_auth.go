package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/farm-portal/application/user"
	"github.com/muhammadheryan/farm-portal/constant"
	utilsContext "github.com/muhammadheryan/farm-portal/utils/context"
	"github.com/muhammadheryan/farm-portal/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer tokens using UserApp.
// Public endpoints such as login, registration and swagger pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, errors.SetCustomError(constant.ErrTokenMissing))
				return
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrTokenInvalid))
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			// expired, revoked and inactive-account failures keep their own error code
			principal, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithActor(r.Context(), principal.Actor)
			ctx = utilsContext.WithSessionID(ctx, principal.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var publicPaths = map[string]bool{
	"/health":                   true,
	"/auth/register":            true,
	"/auth/verify":              true,
	"/auth/resend-verification": true,
	"/auth/login":               true,
	"/auth/refresh":             true,
	"/auth/forgot-password":     true,
	"/auth/reset-password":      true,
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return publicPaths[path]
}
