package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-leave-desk/internal/app"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAccessCode(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccessCodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createAccessCode", err)
		return
	}

	var createdBy *int64
	if admin, ok := utils.GetUserFromContext(r.Context()); ok {
		createdBy = &admin.UserID
	}

	created, err := h.services.AdminService.CreateAccessCode(r.Context(), req.ToAccessCode(createdBy))
	if err != nil {
		writeError(w, r, "*Handler.createAccessCode", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.createAccessCode").Str("code", created.Code).Msg("access code created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAccessCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.services.AdminService.ListAccessCodes(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listAccessCodes", err)
		return
	}
	if codes == nil {
		codes = []models.AccessCode{}
	}

	utils.WriteJSON(w, codes, http.StatusOK)
}

func (h *Handler) deactivateAccessCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.services.AdminService.DeactivateAccessCode(r.Context(), code); err != nil {
		writeError(w, r, "*Handler.deactivateAccessCode", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccessCodeDeactivated}, http.StatusOK)
}

// setSubscription sets or, with "expires_at": null, clears a subscription.
func (h *Handler) setSubscription(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "*Handler.setSubscription", ErrInvalidPathParameter)
		return
	}

	var req models.SetSubscriptionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.setSubscription", err)
		return
	}

	user, err := h.services.AdminService.SetSubscriptionExpiry(r.Context(), userID, req.ExpiresAt)
	if err != nil {
		writeError(w, r, "*Handler.setSubscription", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
