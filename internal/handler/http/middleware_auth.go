package http

import (
	"net/http"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/rs/zerolog"
)

const (
	sessionCookieName = "session"
	csrfHeader        = "X-CSRF-Token"
)

// requireAuth resolves the session token of the request to a user and stores
// both in the request context via [utils.WithUser].
//
// The token is taken from "Authorization: Bearer <token>" or, failing that,
// from the session cookie. Cookie-authenticated requests with an unsafe
// method must also carry a valid X-CSRF-Token header.
//
// Rejections:
//   - 401 when no token is present or the session is unknown or expired.
//   - 403 when the CSRF check fails.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, fromCookie, err := sessionToken(r)
		if err != nil {
			writeError(w, r, "*Handler.requireAuth", err)
			return
		}

		user, err := h.services.AuthService.GetCurrentUser(ctx, token)
		if err != nil {
			writeError(w, r, "*Handler.requireAuth", err)
			return
		}

		if fromCookie && isUnsafeMethod(r.Method) {
			if err := h.services.AuthService.ValidateCSRFToken(ctx, token, r.Header.Get(csrfHeader)); err != nil {
				writeError(w, r, "*Handler.requireAuth", err)
				return
			}
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.UserID)
		})
		ctx = l.WithContext(utils.WithUser(ctx, user, token))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin must run after requireAuth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, "*Handler.requireAdmin", service.ErrUnauthorized)
			return
		}
		if !user.IsAdmin {
			writeError(w, r, "*Handler.requireAdmin", service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAccess must run after requireAuth. It rejects users whose trial and
// subscription are both over.
func (h *Handler) requireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, "*Handler.requireAccess", service.ErrUnauthorized)
			return
		}
		if !h.services.AuthService.HasAccess(user) {
			writeError(w, r, "*Handler.requireAccess", service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionToken extracts the session token from the request. fromCookie
// reports whether it came from the session cookie.
//
// An "Authorization" header that is present but malformed is an error even
// when a cookie is also sent.
func sessionToken(r *http.Request) (token string, fromCookie bool, err error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", false, ErrInvalidAuthorizationHeader
		}
		return token, false, nil
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false, ErrNoSessionToken
	}
	return cookie.Value, true, nil
}

func isUnsafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}
