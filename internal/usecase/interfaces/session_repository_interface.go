package interfaces

import (
	"context"
	"time"

	"pcbuild_configurator/internal/domain/entities"
)

// ISessionRepository persists build sessions.
//
// Not-found lookups return a zero BuildSession and a nil error. Snapshot and
// verdict writes are conditional on their sequence ticket being newer than the
// stored one; a rejected write reports applied=false, not an error.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.BuildSession) (entities.BuildSession, error)
	GetByID(ctx context.Context, id string) (entities.BuildSession, error)
	NextSeq(ctx context.Context, id string) (int64, error)
	ApplySnapshot(ctx context.Context, id string, seq int64, cfg entities.Configuration, expiresAt time.Time) (session entities.BuildSession, applied bool, err error)
	ApplyVerdict(ctx context.Context, id string, seq int64, verdict entities.Verdict) (applied bool, err error)
	UpdateState(ctx context.Context, id string, step entities.Step, lifecycle entities.Lifecycle) (entities.BuildSession, error)
	MarkCompleted(ctx context.Context, id string, paymentID, paymentStatus string) (entities.BuildSession, error)
}
