package handlers

import (
	"errors"
	"net/http"

	"pcbuild_configurator/internal/infrastructure/remote"
	"pcbuild_configurator/internal/usecase"
	"pcbuild_configurator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapBuildError translates use-case failures into the HTTP error envelope.
// Remote create and mutation failures carry the service's message when it
// sent one.
func mapBuildError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidPlatform),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidBudget),
		errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, usecase.ErrStorageIndexRequired),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageIndexOutOfRange):
		return pkg.NewDomainError("STORAGE_INDEX_OUT_OF_RANGE", "Storage index out of range", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainError("BUILD_SESSION_NOT_FOUND", "Build session not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionClosed):
		return pkg.NewDomainError("BUILD_SESSION_CLOSED", "Build session is no longer open", err, http.StatusGone)
	case errors.Is(err, usecase.ErrNoConfiguration):
		return pkg.NewDomainError("CONFIGURATION_NOT_CREATED", "Choose a platform first", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConfigurationExists):
		return pkg.NewDomainError("CONFIGURATION_EXISTS", "Build session already has a configuration", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPlatformLocked):
		return pkg.NewDomainError("PLATFORM_LOCKED", "Platform cannot change once the configuration exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Step change not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewGate):
		return pkg.NewDomainError("REQUIRED_COMPONENTS_MISSING", "Required components are missing", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCompatibilityPending):
		return pkg.NewDomainError("COMPATIBILITY_PENDING", "Compatibility check for the latest change is still running", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCompatibilityBlocking):
		return pkg.NewDomainError("COMPATIBILITY_BLOCKING", "Configuration has blocking compatibility issues", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayMissing):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider rejected the payment", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrRemoteCreate):
		return remoteError("CONFIGURATION_CREATE_FAILED", "Failed to create configuration", err)
	case errors.Is(err, usecase.ErrRemoteMutation):
		return remoteError("CONFIGURATION_UPDATE_FAILED", "Failed to update configuration", err)
	case errors.Is(err, usecase.ErrRemoteQuery):
		return remoteError("CONFIGURATION_SERVICE_UNAVAILABLE", "Configuration service unavailable", err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func remoteError(code, fallback string, err error) *pkg.AppError {
	msg := remote.MessageOf(err)
	if msg == "" {
		msg = fallback
	}
	return pkg.NewDomainError(code, msg, err, http.StatusBadGateway)
}
