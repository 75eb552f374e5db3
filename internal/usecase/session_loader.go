package usecase

import (
	"context"
	"strings"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type sessionLoader struct {
	repo   interfaces.ISessionRepository
	now    func() time.Time
	logger *zap.Logger
}

// load fetches a session and folds expiry into its lifecycle, persisting the
// expired state the first time it is observed.
func (l sessionLoader) load(ctx context.Context, id string) (entities.BuildSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BuildSession{}, ErrInvalidSessionID
	}

	s, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if s.ID == "" {
		return entities.BuildSession{}, ErrSessionNotFound
	}

	if eff := s.EffectiveLifecycle(l.now()); eff != s.Lifecycle {
		if _, err := l.repo.UpdateState(ctx, s.ID, s.Step, eff); err != nil {
			l.logger.Warn("persist expired lifecycle failed", zap.String("session_id", s.ID), zap.Error(err))
		}
		s.Lifecycle = eff
	}
	return s, nil
}

// loadOpen is load plus the requirement that the session still accepts changes.
func (l sessionLoader) loadOpen(ctx context.Context, id string) (entities.BuildSession, error) {
	s, err := l.load(ctx, id)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if !s.Open(l.now()) {
		return entities.BuildSession{}, ErrSessionClosed
	}
	return s, nil
}

// lost explains a conditional state write that matched nothing: the session
// was closed in the meantime or is gone.
func (l sessionLoader) lost(ctx context.Context, id string) error {
	s, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID != "" {
		return ErrSessionClosed
	}
	return ErrSessionNotFound
}

func utcNow(now func() time.Time) func() time.Time {
	if now == nil {
		now = time.Now
	}
	return func() time.Time { return now().UTC() }
}
