package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/MKhiriev/go-leave-desk/models"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.currentUser", service.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{
		User:                 user,
		HasAccess:            h.services.AuthService.HasAccess(user),
		EffectiveAccessLevel: user.EffectiveAccessLevel(time.Now().UTC()),
	}, http.StatusOK)
}

// accessStatus is behind requireAccess, so has_access is always true here;
// the body tells the client which level applies and until when.
func (h *Handler) accessStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.accessStatus", service.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, models.AccessStatusResponse{
		HasAccess:   h.services.AuthService.HasAccess(user),
		AccessLevel: user.EffectiveAccessLevel(time.Now().UTC()),
		ExpiresAt:   user.AccessExpiry(),
	}, http.StatusOK)
}
