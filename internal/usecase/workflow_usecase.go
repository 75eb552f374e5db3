package usecase

import (
	"context"
	"strings"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewGate decides which categories must be populated before review.
type ReviewGate string

const (
	// ReviewGateStrict requires every required category, with at least one
	// storage entry.
	ReviewGateStrict ReviewGate = "strict"
	// ReviewGateObserved requires processor and motherboard only.
	ReviewGateObserved ReviewGate = "observed"
)

func ParseReviewGate(raw string) (ReviewGate, bool) {
	switch g := ReviewGate(strings.ToLower(strings.TrimSpace(raw))); g {
	case ReviewGateStrict, ReviewGateObserved:
		return g, true
	case "":
		return ReviewGateStrict, true
	}
	return "", false
}

func (g ReviewGate) required() []entities.Category {
	if g == ReviewGateObserved {
		return []entities.Category{entities.CategoryProcessor, entities.CategoryMotherboard}
	}
	return entities.RequiredCategories
}

// Missing lists the categories that keep components from passing the gate.
func (g ReviewGate) Missing(components entities.Components) []entities.Category {
	var missing []entities.Category
	for _, cat := range g.required() {
		if !components.Has(cat) {
			missing = append(missing, cat)
		}
	}
	return missing
}

// MissingFor is Missing for a session, treating no configuration as nothing selected.
func (g ReviewGate) MissingFor(s entities.BuildSession) []entities.Category {
	if !s.HasConfiguration() {
		return g.Missing(entities.Components{})
	}
	return g.Missing(s.Configuration.Components)
}

// CheckTransition validates a step change for a session.
func CheckTransition(s entities.BuildSession, to entities.Step, gate ReviewGate) error {
	from := s.Step
	switch {
	case from == to:
		return nil
	case from == entities.StepPlatform && to == entities.StepComponents:
		if !s.HasConfiguration() {
			return ErrNoConfiguration
		}
		return nil
	case from == entities.StepComponents && to == entities.StepReview:
		if len(gate.MissingFor(s)) > 0 {
			return ErrReviewGate
		}
		return nil
	case to == entities.StepPlatform, from == entities.StepReview && to == entities.StepComponents:
		return nil
	}
	return ErrInvalidTransition
}

// IWorkflowController drives the platform → components → review workflow.
type IWorkflowController interface {
	Start(ctx context.Context) (entities.BuildSession, error)
	Get(ctx context.Context, sessionID string) (entities.BuildSession, error)
	SelectPlatform(ctx context.Context, sessionID string, cmd CreateConfigurationCommand) (entities.BuildSession, error)
	Advance(ctx context.Context, sessionID string, to string) (entities.BuildSession, error)
	Abandon(ctx context.Context, sessionID string) (entities.BuildSession, error)
}

type WorkflowControllerDeps struct {
	Sessions   interfaces.ISessionRepository
	Store      IConfigurationStore
	Gate       ReviewGate
	SessionTTL time.Duration
	Now        func() time.Time
	NewID      func() string
	Logger     *zap.Logger
}

type WorkflowController struct {
	sessions sessionLoader
	repo     interfaces.ISessionRepository
	store    IConfigurationStore
	gate     ReviewGate
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
}

var _ IWorkflowController = (*WorkflowController)(nil)

func NewWorkflowController(deps WorkflowControllerDeps) *WorkflowController {
	gate := deps.Gate
	if gate == "" {
		gate = ReviewGateStrict
	}
	ttl := deps.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := utcNow(deps.Now)
	logger := observability.OrNop(deps.Logger)
	return &WorkflowController{
		sessions: sessionLoader{repo: deps.Sessions, now: now, logger: logger},
		repo:     deps.Sessions,
		store:    deps.Store,
		gate:     gate,
		ttl:      ttl,
		now:      now,
		newID:    newID,
		logger:   logger,
	}
}

func (w *WorkflowController) Gate() ReviewGate {
	return w.gate
}

// Start opens a draft session on the platform step.
func (w *WorkflowController) Start(ctx context.Context) (entities.BuildSession, error) {
	now := w.now()
	s := entities.BuildSession{
		ID:        w.newID(),
		Step:      entities.StepPlatform,
		Lifecycle: entities.LifecycleDraft,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(w.ttl),
	}
	created, err := w.repo.Create(ctx, s)
	if err != nil {
		return entities.BuildSession{}, err
	}
	w.logger.Info("build session started", zap.String("session_id", created.ID))
	return created, nil
}

func (w *WorkflowController) Get(ctx context.Context, sessionID string) (entities.BuildSession, error) {
	return w.sessions.load(ctx, sessionID)
}

// SelectPlatform creates the configuration on first use. Returning to the
// platform step later keeps the configuration: choosing the same platform
// moves on, a different one is refused.
func (w *WorkflowController) SelectPlatform(ctx context.Context, sessionID string, cmd CreateConfigurationCommand) (entities.BuildSession, error) {
	platform, ok := entities.ParsePlatform(cmd.Platform)
	if !ok {
		return entities.BuildSession{}, ErrInvalidPlatform
	}

	s, err := w.sessions.loadOpen(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if s.Step != entities.StepPlatform {
		return entities.BuildSession{}, ErrInvalidTransition
	}

	if !s.HasConfiguration() {
		return w.store.Create(ctx, s.ID, cmd)
	}
	if s.Configuration.Platform != platform {
		return entities.BuildSession{}, ErrPlatformLocked
	}
	return w.moveTo(ctx, s, entities.StepComponents)
}

// Advance moves the session to another step, forward or back.
func (w *WorkflowController) Advance(ctx context.Context, sessionID string, to string) (entities.BuildSession, error) {
	step, ok := entities.ParseStep(strings.ToLower(strings.TrimSpace(to)))
	if !ok {
		return entities.BuildSession{}, ErrInvalidStep
	}

	s, err := w.sessions.loadOpen(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if err := CheckTransition(s, step, w.gate); err != nil {
		return entities.BuildSession{}, err
	}
	if s.Step == step {
		return s, nil
	}
	return w.moveTo(ctx, s, step)
}

// Abandon closes the session. Its configuration stays with the remote service.
func (w *WorkflowController) Abandon(ctx context.Context, sessionID string) (entities.BuildSession, error) {
	s, err := w.sessions.loadOpen(ctx, sessionID)
	if err != nil {
		return entities.BuildSession{}, err
	}
	updated, err := w.repo.UpdateState(ctx, s.ID, s.Step, entities.LifecycleAbandoned)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if updated.ID == "" {
		return entities.BuildSession{}, w.sessions.lost(ctx, s.ID)
	}
	w.logger.Info("build session abandoned", zap.String("session_id", s.ID), zap.String("step", string(s.Step)))
	return updated, nil
}

func (w *WorkflowController) moveTo(ctx context.Context, s entities.BuildSession, step entities.Step) (entities.BuildSession, error) {
	updated, err := w.repo.UpdateState(ctx, s.ID, step, s.Lifecycle)
	if err != nil {
		return entities.BuildSession{}, err
	}
	if updated.ID == "" {
		return entities.BuildSession{}, w.sessions.lost(ctx, s.ID)
	}
	w.logger.Info("workflow step changed",
		zap.String("session_id", s.ID),
		zap.String("from", string(s.Step)),
		zap.String("to", string(step)),
	)
	return updated, nil
}
