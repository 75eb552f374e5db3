package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultSessionTTL = 24 * time.Hour
	defaultUseCase    = "General"
	defaultConfigName = "Custom Build"
)

// CreateConfigurationCommand carries the platform-step choices.
type CreateConfigurationCommand struct {
	Platform     string
	UseCase      string
	BudgetTarget float64
	ConfigName   string
}

// IConfigurationStore owns the session's Configuration.
//
// Every operation round-trips to the remote configuration service and
// replaces the local configuration with the authoritative response.
type IConfigurationStore interface {
	Create(ctx context.Context, sessionID string, cmd CreateConfigurationCommand) (entities.BuildSession, error)
	AddComponent(ctx context.Context, sessionID string, category string, productID string, quantity int) (entities.BuildSession, error)
	RemoveComponent(ctx context.Context, sessionID string, category string, storageIndex *int) (entities.BuildSession, error)
}

type ConfigurationStoreDeps struct {
	Sessions   interfaces.ISessionRepository
	Remote     interfaces.IConfigurationGateway
	Checker    CompatibilityScheduler
	SessionTTL time.Duration
	Now        func() time.Time
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

type ConfigurationStore struct {
	sessions sessionLoader
	repo     interfaces.ISessionRepository
	remote   interfaces.IConfigurationGateway
	checker  CompatibilityScheduler
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
	metrics  *observability.Metrics
}

var _ IConfigurationStore = (*ConfigurationStore)(nil)

func NewConfigurationStore(deps ConfigurationStoreDeps) *ConfigurationStore {
	ttl := deps.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := utcNow(deps.Now)
	logger := observability.OrNop(deps.Logger)
	return &ConfigurationStore{
		sessions: sessionLoader{repo: deps.Sessions, now: now, logger: logger},
		repo:     deps.Sessions,
		remote:   deps.Remote,
		checker:  deps.Checker,
		ttl:      ttl,
		now:      now,
		logger:   logger,
		metrics:  deps.Metrics,
	}
}

// Create asks the remote service for a new draft configuration and binds it
// to the session. The session moves to the components step.
func (s *ConfigurationStore) Create(ctx context.Context, sessionID string, cmd CreateConfigurationCommand) (entities.BuildSession, error) {
	platform, ok := entities.ParsePlatform(cmd.Platform)
	if !ok {
		return entities.BuildSession{}, ErrInvalidPlatform
	}
	if cmd.BudgetTarget < 0 {
		return entities.BuildSession{}, ErrInvalidBudget
	}

	session, err := s.sessions.loadOpen(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if session.HasConfiguration() {
		return entities.BuildSession{}, ErrConfigurationExists
	}

	seq, err := s.repo.NextSeq(ctx, session.ID)
	if err != nil {
		return entities.BuildSession{}, err
	}

	in := interfaces.CreateConfigurationInput{
		ConfigName:   firstNonEmpty(cmd.ConfigName, defaultConfigName),
		Platform:     platform,
		UseCase:      firstNonEmpty(cmd.UseCase, defaultUseCase),
		BudgetTarget: cmd.BudgetTarget,
		SessionID:    session.ID,
	}
	cfg, err := s.remote.Create(ctx, in)
	if err != nil {
		s.logger.Error("remote create failed", zap.String("session_id", session.ID), zap.String("platform", string(platform)), zap.Error(err))
		return entities.BuildSession{}, fmt.Errorf("%w: %w", ErrRemoteCreate, err)
	}
	if strings.TrimSpace(cfg.ID) == "" {
		return entities.BuildSession{}, fmt.Errorf("%w: response without configuration id", ErrRemoteCreate)
	}

	updated, applied, err := s.applySnapshot(ctx, session.ID, seq, cfg)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if !applied && (!updated.HasConfiguration() || updated.Configuration.ID != cfg.ID) {
		return entities.BuildSession{}, ErrConfigurationExists
	}

	updated, err = s.repo.UpdateState(ctx, session.ID, entities.StepComponents, entities.LifecycleActive)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if updated.ID == "" {
		return entities.BuildSession{}, s.sessions.lost(ctx, session.ID)
	}

	s.metrics.Mutation("create", "")
	s.logger.Info("configuration created",
		zap.String("session_id", session.ID),
		zap.String("configuration_id", cfg.ID),
		zap.String("platform", string(platform)),
	)
	return updated, nil
}

// AddComponent replaces a singular selection or appends a storage entry.
// quantity 0 means one unit.
func (s *ConfigurationStore) AddComponent(ctx context.Context, sessionID string, category string, productID string, quantity int) (entities.BuildSession, error) {
	cat, ok := entities.ParseCategory(category)
	if !ok {
		return entities.BuildSession{}, ErrInvalidCategory
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.BuildSession{}, ErrInvalidProductID
	}
	if quantity < 0 {
		return entities.BuildSession{}, ErrInvalidQuantity
	}
	if quantity == 0 {
		quantity = 1
	}

	session, err := s.loadConfigured(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}

	return s.mutate(ctx, session, "add", cat, func(configID string) (entities.Configuration, error) {
		return s.remote.AddComponent(ctx, configID, cat, productID, quantity)
	})
}

// RemoveComponent clears a singular selection, or deletes the storage entry
// at storageIndex.
func (s *ConfigurationStore) RemoveComponent(ctx context.Context, sessionID string, category string, storageIndex *int) (entities.BuildSession, error) {
	cat, ok := entities.ParseCategory(category)
	if !ok {
		return entities.BuildSession{}, ErrInvalidCategory
	}
	if cat.Kind() == entities.KindMany && storageIndex == nil {
		return entities.BuildSession{}, ErrStorageIndexRequired
	}

	session, err := s.loadConfigured(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}

	var index *int
	if cat.Kind() == entities.KindMany {
		n := len(session.Configuration.Components.Storage())
		if *storageIndex < 0 || *storageIndex >= n {
			return entities.BuildSession{}, ErrStorageIndexOutOfRange
		}
		i := *storageIndex
		index = &i
	}

	return s.mutate(ctx, session, "remove", cat, func(configID string) (entities.Configuration, error) {
		return s.remote.RemoveComponent(ctx, configID, cat, index)
	})
}

func (s *ConfigurationStore) loadConfigured(ctx context.Context, sessionID string) (entities.BuildSession, error) {
	session, err := s.sessions.loadOpen(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if !session.HasConfiguration() {
		return entities.BuildSession{}, ErrNoConfiguration
	}
	return session, nil
}

// mutate takes a ticket, calls the remote service, applies the response if it
// is still the newest, and schedules the compatibility re-check.
func (s *ConfigurationStore) mutate(
	ctx context.Context,
	session entities.BuildSession,
	operation string,
	category entities.Category,
	call func(configID string) (entities.Configuration, error),
) (entities.BuildSession, error) {
	configID := session.Configuration.ID

	seq, err := s.repo.NextSeq(ctx, session.ID)
	if err != nil {
		return entities.BuildSession{}, err
	}

	cfg, err := call(configID)
	if err != nil {
		s.logger.Error("remote mutation failed",
			zap.String("session_id", session.ID),
			zap.String("configuration_id", configID),
			zap.String("operation", operation),
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return entities.BuildSession{}, fmt.Errorf("%w: %w", ErrRemoteMutation, err)
	}
	if cfg.ID == "" {
		cfg.ID = configID
	}

	updated, applied, err := s.applySnapshot(ctx, session.ID, seq, cfg)
	if err != nil {
		return entities.BuildSession{}, err
	}
	s.metrics.Mutation(operation, string(category))
	if !applied {
		s.logger.Debug("stale configuration snapshot dropped", zap.String("session_id", session.ID), zap.Int64("seq", seq))
	}

	// a change made at review sends the build back through the gate
	if applied && updated.Step == entities.StepReview {
		back, err := s.repo.UpdateState(ctx, session.ID, entities.StepComponents, updated.Lifecycle)
		if err != nil {
			return entities.BuildSession{}, err
		}
		if back.ID == "" {
			return entities.BuildSession{}, s.sessions.lost(ctx, session.ID)
		}
		s.logger.Info("workflow step changed",
			zap.String("session_id", session.ID),
			zap.String("from", string(entities.StepReview)),
			zap.String("to", string(entities.StepComponents)),
		)
		updated = back
	}

	if s.checker != nil {
		s.checker.Schedule(RecheckRequested{SessionID: session.ID, ConfigurationID: configID, Seq: seq})
	}
	return updated, nil
}

// applySnapshot stores cfg as the authoritative configuration. Pricing is
// recomputed from components and the remote pricing block is ignored.
func (s *ConfigurationStore) applySnapshot(ctx context.Context, sessionID string, seq int64, cfg entities.Configuration) (entities.BuildSession, bool, error) {
	cfg.Pricing = ComputePricing(cfg.Components)

	updated, applied, err := s.repo.ApplySnapshot(ctx, sessionID, seq, cfg, s.now().Add(s.ttl))
	if err != nil {
		return entities.BuildSession{}, false, err
	}
	if updated.ID == "" {
		return entities.BuildSession{}, false, ErrSessionNotFound
	}
	if !applied {
		s.metrics.StaleResponse("snapshot")
	}
	return updated, applied, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
