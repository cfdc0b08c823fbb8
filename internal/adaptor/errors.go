package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/apperr"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps the apperr kinds onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseUnprocessable(w, "Validation failed", apperr.Reasons(err))

	case errors.Is(err, apperr.ErrRoomUnavailable):
		log.Warn(operation+" failed - room unavailable", zap.Error(err))
		utils.ResponseUnprocessable(w, apperr.ErrRoomUnavailable.Error(), []string{err.Error()})

	case errors.Is(err, apperr.ErrDuplicateKey):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrReferentialIntegrity):
		log.Warn(operation+" failed - still referenced", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Forbidden")

	case errors.Is(err, apperr.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
