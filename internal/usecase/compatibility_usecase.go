package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultCompatibilityTimeout = 10 * time.Second

// RecheckRequested is emitted after every successful component mutation.
// Seq is the ticket of the mutation that triggered it.
type RecheckRequested struct {
	SessionID       string
	ConfigurationID string
	Seq             int64
}

// CompatibilityScheduler accepts re-check events; the configuration store
// depends only on this.
type CompatibilityScheduler interface {
	Schedule(ev RecheckRequested)
}

// ICompatibilityRequestor exposes the remote verdict orchestration.
type ICompatibilityRequestor interface {
	CompatibilityScheduler
	CheckCompatibility(ctx context.Context, configID string) (entities.Verdict, error)
	Handle(ctx context.Context, ev RecheckRequested) error
	Wait()
}

type CompatibilityRequestorDeps struct {
	Gateway  interfaces.ICompatibilityGateway
	Sessions interfaces.ISessionRepository
	Timeout  time.Duration
	Logger   *zap.Logger
	Metrics  *observability.Metrics
}

// CompatibilityRequestor asks the remote service for a verdict and stores it
// verbatim. Failures are logged and never roll back the mutation that
// triggered the check.
type CompatibilityRequestor struct {
	gateway  interfaces.ICompatibilityGateway
	sessions interfaces.ISessionRepository
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *observability.Metrics
	inflight sync.WaitGroup
}

var _ ICompatibilityRequestor = (*CompatibilityRequestor)(nil)

func NewCompatibilityRequestor(deps CompatibilityRequestorDeps) *CompatibilityRequestor {
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = defaultCompatibilityTimeout
	}
	return &CompatibilityRequestor{
		gateway:  deps.Gateway,
		sessions: deps.Sessions,
		timeout:  timeout,
		logger:   observability.OrNop(deps.Logger),
		metrics:  deps.Metrics,
	}
}

// CheckCompatibility fetches a verdict without storing it.
func (r *CompatibilityRequestor) CheckCompatibility(ctx context.Context, configID string) (entities.Verdict, error) {
	configID = strings.TrimSpace(configID)
	if configID == "" {
		return entities.Verdict{}, fmt.Errorf("%w: empty configuration id", ErrCompatibilityCheck)
	}
	v, err := r.gateway.CheckCompatibility(ctx, configID)
	if err != nil {
		return entities.Verdict{}, fmt.Errorf("%w: %w", ErrCompatibilityCheck, err)
	}
	return v, nil
}

// Schedule runs the re-check on its own goroutine. The check outlives the
// request that triggered it, bounded by the requestor timeout.
func (r *CompatibilityRequestor) Schedule(ev RecheckRequested) {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.Handle(ctx, ev); err != nil {
			r.metrics.DegradedCall("compatibility_check")
			r.logger.Warn("compatibility re-check failed",
				zap.String("session_id", ev.SessionID),
				zap.String("configuration_id", ev.ConfigurationID),
				zap.Int64("seq", ev.Seq),
				zap.Error(err),
			)
		}
	}()
}

// Handle performs one re-check synchronously. A verdict older than the stored
// one is dropped.
func (r *CompatibilityRequestor) Handle(ctx context.Context, ev RecheckRequested) error {
	verdict, err := r.CheckCompatibility(ctx, ev.ConfigurationID)
	if err != nil {
		return err
	}

	applied, err := r.sessions.ApplyVerdict(ctx, ev.SessionID, ev.Seq, verdict)
	if err != nil {
		return fmt.Errorf("%w: store verdict: %w", ErrCompatibilityCheck, err)
	}
	if !applied {
		r.metrics.StaleResponse("verdict")
		r.logger.Debug("stale compatibility verdict dropped",
			zap.String("session_id", ev.SessionID),
			zap.Int64("seq", ev.Seq),
		)
		return nil
	}

	status := verdict.Status()
	r.metrics.ObserveVerdict(string(status))
	r.logger.Info("compatibility verdict applied",
		zap.String("session_id", ev.SessionID),
		zap.String("configuration_id", ev.ConfigurationID),
		zap.Int64("seq", ev.Seq),
		zap.String("status", string(status)),
		zap.Int("issues", len(verdict.Issues)),
		zap.Int("warnings", len(verdict.Warnings)),
	)
	return nil
}

// Wait blocks until every scheduled re-check has finished.
func (r *CompatibilityRequestor) Wait() {
	r.inflight.Wait()
}

// OverallStatus is the worst status of a verdict: blocking, advisory or clean.
func OverallStatus(v entities.Verdict) entities.VerdictStatus {
	return v.Status()
}
