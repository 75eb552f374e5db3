package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase/interfaces"
)

var ErrSessionAlreadyExists = errors.New("build session already exists")

type memorySession struct {
	session entities.BuildSession
	config  *entities.Configuration
	verdict entities.Verdict
}

// SessionMemoryRepository keeps build sessions in process memory. It is used
// for local development and tests, and when SESSION_STORE=memory.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	now      func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]*memorySession),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s entities.BuildSession) (entities.BuildSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return entities.BuildSession{}, ErrSessionAlreadyExists
	}
	rec := &memorySession{session: s}
	if s.Configuration != nil {
		cfg := s.Configuration.Clone()
		rec.config = &cfg
		rec.verdict = cfg.Compatibility
	}
	rec.session.Configuration = nil
	r.sessions[s.ID] = rec
	return r.view(rec), nil
}

func (r *SessionMemoryRepository) GetByID(_ context.Context, id string) (entities.BuildSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return entities.BuildSession{}, nil
	}
	return r.view(rec), nil
}

func (r *SessionMemoryRepository) NextSeq(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return 0, ErrSessionMissing
	}
	rec.session.IssuedSeq++
	return rec.session.IssuedSeq, nil
}

func (r *SessionMemoryRepository) ApplySnapshot(_ context.Context, id string, seq int64, cfg entities.Configuration, expiresAt time.Time) (entities.BuildSession, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return entities.BuildSession{}, false, nil
	}
	if seq <= rec.session.AppliedSeq {
		return r.view(rec), false, nil
	}
	if rec.config != nil && rec.config.ID != cfg.ID {
		return r.view(rec), false, nil
	}

	stored := cfg.Clone()
	stored.Compatibility = entities.Verdict{}
	rec.config = &stored
	rec.session.AppliedSeq = seq
	rec.session.ExpiresAt = expiresAt
	rec.session.UpdatedAt = r.now()
	return r.view(rec), true, nil
}

func (r *SessionMemoryRepository) ApplyVerdict(_ context.Context, id string, seq int64, verdict entities.Verdict) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok || seq <= rec.session.VerdictSeq {
		return false, nil
	}
	rec.verdict = cloneVerdict(verdict)
	rec.session.VerdictSeq = seq
	rec.session.UpdatedAt = r.now()
	return true, nil
}

// UpdateState only touches sessions still in draft or active. Closed
// lifecycles are final.
func (r *SessionMemoryRepository) UpdateState(_ context.Context, id string, step entities.Step, lifecycle entities.Lifecycle) (entities.BuildSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return entities.BuildSession{}, nil
	}
	if rec.session.Lifecycle != entities.LifecycleDraft && rec.session.Lifecycle != entities.LifecycleActive {
		return entities.BuildSession{}, nil
	}
	rec.session.Step = step
	rec.session.Lifecycle = lifecycle
	rec.session.UpdatedAt = r.now()
	return r.view(rec), nil
}

func (r *SessionMemoryRepository) MarkCompleted(_ context.Context, id string, paymentID, paymentStatus string) (entities.BuildSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok || rec.session.Lifecycle != entities.LifecycleActive {
		return entities.BuildSession{}, nil
	}
	rec.session.Lifecycle = entities.LifecycleCompleted
	rec.session.PaymentID = paymentID
	rec.session.PaymentStatus = paymentStatus
	rec.session.UpdatedAt = r.now()
	return r.view(rec), nil
}

// view composes the stored snapshot and verdict into a detached copy.
func (r *SessionMemoryRepository) view(rec *memorySession) entities.BuildSession {
	out := rec.session
	if rec.config != nil {
		cfg := rec.config.Clone()
		cfg.Compatibility = cloneVerdict(rec.verdict)
		out.Configuration = &cfg
	}
	return out
}

func cloneVerdict(v entities.Verdict) entities.Verdict {
	out := v
	out.Issues = append([]entities.Issue(nil), v.Issues...)
	out.Warnings = append([]entities.Warning(nil), v.Warnings...)
	return out
}
