package response

import (
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase"
)

type BudgetResponse struct {
	Target float64 `json:"target"`
	Ratio  float64 `json:"ratio"`
	Status string  `json:"status"`
}

// CompatibilityPending replaces the verdict status while the latest snapshot
// has not been checked yet.
const CompatibilityPending = "pending"

type CompatibilityResponse struct {
	Status   string             `json:"status"`
	IsValid  bool               `json:"is_valid"`
	Issues   []entities.Issue   `json:"issues"`
	Warnings []entities.Warning `json:"warnings"`
}

type ConfigurationResponse struct {
	ID            string                `json:"id"`
	ConfigName    string                `json:"config_name"`
	Platform      string                `json:"platform"`
	UseCase       string                `json:"use_case"`
	Components    entities.Components   `json:"components"`
	Pricing       entities.Pricing      `json:"pricing"`
	Budget        BudgetResponse        `json:"budget"`
	Compatibility CompatibilityResponse `json:"compatibility"`
}

type PaymentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// BuildSessionResponse is the session view returned by every build route.
type BuildSessionResponse struct {
	SessionID       string                 `json:"session_id"`
	Step            string                 `json:"step"`
	Lifecycle       string                 `json:"lifecycle"`
	Configuration   *ConfigurationResponse `json:"configuration,omitempty"`
	MissingRequired []string               `json:"missing_required"`
	CanReview       bool                   `json:"can_review"`
	Payment         *PaymentResponse       `json:"payment,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	ExpiresAt       time.Time              `json:"expires_at"`
}

func FromBuildSession(s entities.BuildSession, gate usecase.ReviewGate) BuildSessionResponse {
	missing := gate.MissingFor(s)
	out := BuildSessionResponse{
		SessionID:       s.ID,
		Step:            string(s.Step),
		Lifecycle:       string(s.Lifecycle),
		MissingRequired: make([]string, 0, len(missing)),
		CanReview:       s.HasConfiguration() && len(missing) == 0,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		ExpiresAt:       s.ExpiresAt,
	}
	for _, c := range missing {
		out.MissingRequired = append(out.MissingRequired, string(c))
	}
	if s.HasConfiguration() {
		cfg := FromConfiguration(*s.Configuration)
		if s.VerdictPending() {
			cfg.Compatibility.Status = CompatibilityPending
		}
		out.Configuration = &cfg
	}
	if s.PaymentID != "" {
		out.Payment = &PaymentResponse{ID: s.PaymentID, Status: s.PaymentStatus}
	}
	return out
}

func FromConfiguration(cfg entities.Configuration) ConfigurationResponse {
	total := cfg.Pricing.Total
	target := cfg.Budget.Target
	return ConfigurationResponse{
		ID:         cfg.ID,
		ConfigName: cfg.ConfigName,
		Platform:   string(cfg.Platform),
		UseCase:    cfg.UseCase,
		Components: cfg.Components,
		Pricing:    cfg.Pricing,
		Budget: BudgetResponse{
			Target: target,
			Ratio:  usecase.BudgetRatio(total, target),
			Status: string(usecase.ClassifyBudget(total, target)),
		},
		Compatibility: CompatibilityResponse{
			Status:   string(usecase.OverallStatus(cfg.Compatibility)),
			IsValid:  cfg.Compatibility.IsValid,
			Issues:   nonNil(cfg.Compatibility.Issues),
			Warnings: nonNil(cfg.Compatibility.Warnings),
		},
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
