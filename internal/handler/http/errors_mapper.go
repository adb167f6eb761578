package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-leave-desk/internal/app"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/internal/utils"
	"github.com/MKhiriev/go-leave-desk/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:                http.StatusBadRequest,
	service.ErrInvalidAccessCode:         http.StatusBadRequest,
	service.ErrInvalidOrExpiredToken:     http.StatusBadRequest,
	service.ErrDuplicateEmail:            http.StatusConflict,
	service.ErrPendingVerificationExists: http.StatusConflict,
	service.ErrAccessCodeExists:          http.StatusConflict,
	service.ErrInvalidCredentials:        http.StatusUnauthorized,
	service.ErrUnauthorized:              http.StatusUnauthorized,
	service.ErrEmailNotVerified:          http.StatusForbidden,
	service.ErrForbidden:                 http.StatusForbidden,
	service.ErrAccessCodeNotFound:        http.StatusNotFound,
	service.ErrUserNotFound:              http.StatusNotFound,
	service.ErrRateLimited:               http.StatusTooManyRequests,
	service.ErrStoreFailure:              http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:     http.StatusInternalServerError,

	ErrNoSessionToken:             http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPathParameter:       http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with {"error": ...}. Server errors get a
// generic message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		message = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
