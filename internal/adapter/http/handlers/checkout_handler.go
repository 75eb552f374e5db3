package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "pcbuild_configurator/internal/adapter/http/dto/response"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler hands a reviewed build to the payment provider.
type CheckoutHandler struct {
	checkout usecase.ICheckoutUseCase
	gate     usecase.ReviewGate
	mockMode bool
	logger   *zap.Logger
}

func NewCheckoutHandler(checkout usecase.ICheckoutUseCase, gate usecase.ReviewGate, mockMode bool, logger *zap.Logger) *CheckoutHandler {
	if gate == "" {
		gate = usecase.ReviewGateStrict
	}
	return &CheckoutHandler{checkout: checkout, gate: gate, mockMode: mockMode, logger: observability.OrNop(logger)}
}

// Checkout godoc
// @Summary      Complete a build session
// @Description  Charges the derived configuration total through Mercado Pago. The body may be the raw payment payload or wrapped in mp_payload.
// @Tags         builds
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Build session ID"
// @Param        payload     body  request.CheckoutRequest  false  "Mercado Pago payment payload"
// @Success      200  {object}  response.BuildSessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /builds/{session_id}/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := c.Param("session_id")
	log := h.logger.With(zap.String("session_id", sessionID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("checkout payload invalid", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		log.Info("checkout payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	s, err := h.checkout.Complete(c.Request.Context(), sessionID, mpPayload)
	if err != nil {
		appErr := mapBuildError(err)
		log.Warn("checkout failed", zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}
	log.Info("checkout completed", zap.String("payment_id", s.PaymentID), zap.String("payment_status", s.PaymentStatus))
	c.JSON(http.StatusOK, response.FromBuildSession(s, h.gate))
}

// readMPPayload accepts either a bare payment payload or one wrapped in
// {"mp_payload": ...}. An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if trimmed := strings.TrimSpace(string(wrapped)); trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
