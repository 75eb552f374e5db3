package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICheckoutUseCase hands a reviewed build to the payment provider.
type ICheckoutUseCase interface {
	Complete(ctx context.Context, sessionID string, paymentPayload json.RawMessage) (entities.BuildSession, error)
}

type CheckoutUseCaseDeps struct {
	Sessions interfaces.ISessionRepository
	Gateway  interfaces.IPaymentGateway
	Gate     ReviewGate
	Now      func() time.Time
	Logger   *zap.Logger
}

type CheckoutUseCase struct {
	sessions sessionLoader
	repo     interfaces.ISessionRepository
	gateway  interfaces.IPaymentGateway
	gate     ReviewGate
	logger   *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(deps CheckoutUseCaseDeps) *CheckoutUseCase {
	gate := deps.Gate
	if gate == "" {
		gate = ReviewGateStrict
	}
	logger := observability.OrNop(deps.Logger)
	return &CheckoutUseCase{
		sessions: sessionLoader{repo: deps.Sessions, now: utcNow(deps.Now), logger: logger},
		repo:     deps.Sessions,
		gateway:  deps.Gateway,
		gate:     gate,
		logger:   logger,
	}
}

// Complete requires the review step, a build that still passes the review
// gate and a verdict for the latest snapshot without blocking issues. The
// amount and external reference always come from the configuration.
func (u *CheckoutUseCase) Complete(ctx context.Context, sessionID string, paymentPayload json.RawMessage) (entities.BuildSession, error) {
	if len(paymentPayload) == 0 || strings.TrimSpace(string(paymentPayload)) == "" {
		paymentPayload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(paymentPayload, &req); err != nil || req == nil {
		return entities.BuildSession{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.BuildSession{}, ErrPaymentGatewayMissing
	}

	s, err := u.sessions.loadOpen(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if !s.HasConfiguration() {
		return entities.BuildSession{}, ErrNoConfiguration
	}
	if s.Step != entities.StepReview {
		return entities.BuildSession{}, ErrInvalidTransition
	}
	if missing := u.gate.MissingFor(s); len(missing) > 0 {
		return entities.BuildSession{}, fmt.Errorf("%w: %v", ErrReviewGate, missing)
	}
	if s.VerdictPending() {
		return entities.BuildSession{}, ErrCompatibilityPending
	}
	cfg := s.Configuration
	if cfg.Compatibility.Status() == entities.VerdictBlocking {
		return entities.BuildSession{}, ErrCompatibilityBlocking
	}

	req["external_reference"] = cfg.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("%s (%s)", firstNonEmpty(cfg.ConfigName, defaultConfigName), cfg.Platform)
	}
	req["transaction_amount"] = cfg.Pricing.Total

	payload, err := json.Marshal(req)
	if err != nil {
		return entities.BuildSession{}, err
	}

	u.logger.Info("checkout hand-off start",
		zap.String("session_id", s.ID),
		zap.String("configuration_id", cfg.ID),
		zap.Float64("amount", cfg.Pricing.Total),
	)
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.logger.Error("payment gateway failed", zap.String("session_id", s.ID), zap.Error(err))
		return entities.BuildSession{}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	updated, err := u.repo.MarkCompleted(ctx, s.ID, paymentID, status)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if updated.ID == "" {
		return entities.BuildSession{}, ErrSessionClosed
	}
	u.logger.Info("checkout hand-off done",
		zap.String("session_id", s.ID),
		zap.String("payment_id", paymentID),
		zap.String("payment_status", status),
	)
	return updated, nil
}
