package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

// withAuth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// with the backend's sign key and issuer and loads the user named by its
// subject. On success the user's ID and role are stored in the request
// context under [utils.UserIDCtxKey] and [utils.RoleCtxKey].
//
// The middleware answers 401 with a "WWW-Authenticate: Bearer" header when
// the header is missing or malformed ([ErrNotAuthenticated]) or the token is
// invalid, expired or names an unknown user ([ErrInvalidToken]). Deactivated
// users get 400 "Inactive user".
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token")
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, ErrNotAuthenticated)
			return
		}

		_, userID, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, ErrInvalidToken)
			return
		}

		user, err := h.catalog.User(userID)
		if err != nil {
			log.Debug().Err(err).Int64("user_id", userID).Msg("token subject is unknown")
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, ErrInvalidToken)
			return
		}
		if !user.IsActive {
			writeError(w, r, mockdata.ErrInactiveUser)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, user.ID)
		ctx = context.WithValue(ctx, utils.RoleCtxKey, user.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets through only users whose role, stored by withAuth, equals
// role. Everyone else is rejected with denied.
func requireRole(role models.UserRole, denied error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if current, ok := utils.GetRoleFromContext(r.Context()); !ok || current != role {
				writeError(w, r, denied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
