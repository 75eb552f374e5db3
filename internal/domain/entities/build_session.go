package entities

import "time"

// Step is a stage of the selection workflow.
type Step string

const (
	StepPlatform   Step = "platform"
	StepComponents Step = "components"
	StepReview     Step = "review"
)

func ParseStep(raw string) (Step, bool) {
	switch s := Step(raw); s {
	case StepPlatform, StepComponents, StepReview:
		return s, true
	}
	return "", false
}

// Lifecycle represents the explicit lifetime of a build session.
//
//   - draft: no configuration yet (platform not chosen)
//   - active: configuration created, accepting changes
//   - completed: handed off to checkout
//   - abandoned: closed by the user
//   - expired: idle past ExpiresAt
type Lifecycle string

const (
	LifecycleDraft     Lifecycle = "draft"
	LifecycleActive    Lifecycle = "active"
	LifecycleCompleted Lifecycle = "completed"
	LifecycleAbandoned Lifecycle = "abandoned"
	LifecycleExpired   Lifecycle = "expired"
)

// BuildSession binds one browsing session to at most one Configuration.
//
// Sequencing:
//   - IssuedSeq is bumped before every remote call that may change the configuration.
//   - AppliedSeq is the ticket of the snapshot currently stored.
//   - VerdictSeq is the ticket of the compatibility verdict currently stored.
//
// A response carrying a ticket not newer than the stored one is discarded.
type BuildSession struct {
	ID            string
	Step          Step
	Lifecycle     Lifecycle
	Configuration *Configuration
	IssuedSeq     int64
	AppliedSeq    int64
	VerdictSeq    int64
	PaymentID     string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ExpiresAt     time.Time
}

// EffectiveLifecycle folds expiry into the stored lifecycle.
func (s BuildSession) EffectiveLifecycle(now time.Time) Lifecycle {
	if s.Lifecycle == LifecycleDraft || s.Lifecycle == LifecycleActive {
		if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
			return LifecycleExpired
		}
	}
	return s.Lifecycle
}

// Open reports whether the session still accepts changes.
func (s BuildSession) Open(now time.Time) bool {
	switch s.EffectiveLifecycle(now) {
	case LifecycleDraft, LifecycleActive:
		return true
	}
	return false
}

func (s BuildSession) HasConfiguration() bool {
	return s.Configuration != nil && s.Configuration.ID != ""
}

// VerdictPending reports whether the stored verdict predates the stored
// snapshot, so the current configuration has not been checked yet.
func (s BuildSession) VerdictPending() bool {
	return s.HasConfiguration() && s.VerdictSeq < s.AppliedSeq
}
