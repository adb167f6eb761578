package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-leave-desk/internal/app"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/MKhiriev/go-leave-desk/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registration, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	utils.WriteJSON(w, registration, http.StatusCreated)
}

// verifyEmail accepts the token as a JSON body on POST and as the "token"
// query parameter on GET (the link in the email).
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if r.Method == http.MethodGet {
		req.Token = r.URL.Query().Get("token")
	} else if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.verifyEmail", err)
		return
	}

	email, err := h.services.AuthService.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, "*Handler.verifyEmail", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.verifyEmail").Str("email", email).Msg("email verified")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEmailVerified}, http.StatusOK)
}

// login opens a session. The token is returned in the body and also set as
// an HttpOnly cookie; the CSRF token for cookie-based calls comes along.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}
	req.IPAddress = utils.ClientIP(r)
	req.UserAgent = r.UserAgent()

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	csrfToken, err := h.services.AuthService.IssueCSRFToken(ctx, result.SessionToken)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	h.setSessionCookie(w, result.SessionToken, result.ExpiresAt)
	utils.WriteJSON(w, models.LoginResponse{
		Token:     result.SessionToken,
		ExpiresAt: result.ExpiresAt,
		CSRFToken: csrfToken,
		User:      result.User,
	}, http.StatusOK)
}

// logout is not guarded: a missing or stale session still clears the cookie
// and answers 200.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, fromCookie, err := sessionToken(r)
	if err == nil {
		if fromCookie {
			if err := h.services.AuthService.ValidateCSRFToken(ctx, token, r.Header.Get(csrfHeader)); err != nil {
				writeError(w, r, "*Handler.logout", err)
				return
			}
		}
		if err := h.services.AuthService.Logout(ctx, token); err != nil {
			writeError(w, r, "*Handler.logout", err)
			return
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

// forgotPassword answers 202 whether or not the account exists.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.forgotPassword", err)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, r, "*Handler.forgotPassword", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: app.MsgPasswordResetRequested,
	}, http.StatusAccepted)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	// every session was revoked with the old password
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordChanged}, http.StatusOK)
}

func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetSessionTokenFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.csrfToken", errors.New("session token missing from context"))
		return
	}

	csrfToken, err := h.services.AuthService.IssueCSRFToken(r.Context(), token)
	if err != nil {
		writeError(w, r, "*Handler.csrfToken", err)
		return
	}

	utils.WriteJSON(w, models.CSRFTokenResponse{CSRFToken: csrfToken}, http.StatusOK)
}
