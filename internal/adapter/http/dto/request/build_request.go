package request

import (
	"encoding/json"
	"strings"

	"pcbuild_configurator/internal/usecase"
)

// PlatformRequest is the payload of the platform step.
type PlatformRequest struct {
	Platform     string  `json:"platform" binding:"required"`
	UseCase      string  `json:"use_case"`
	BudgetTarget float64 `json:"budget_target"`
	ConfigName   string  `json:"config_name"`
}

func (r PlatformRequest) ToCommand() usecase.CreateConfigurationCommand {
	return usecase.CreateConfigurationCommand{
		Platform:     strings.TrimSpace(r.Platform),
		UseCase:      strings.TrimSpace(r.UseCase),
		BudgetTarget: r.BudgetTarget,
		ConfigName:   strings.TrimSpace(r.ConfigName),
	}
}

// ComponentRequest selects a product. A missing quantity means one unit.
type ComponentRequest struct {
	ComponentType string `json:"component_type" binding:"required"`
	ProductID     string `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity"`
}

// RemoveComponentRequest clears a category. StorageIndex picks the storage
// entry to drop and is ignored for singular categories.
type RemoveComponentRequest struct {
	ComponentType string `json:"component_type" binding:"required"`
	StorageIndex  *int   `json:"storage_index"`
}

type StepRequest struct {
	Step string `json:"step" binding:"required"`
}

// CheckoutRequest documents the checkout body. `mp_payload` is forwarded
// to Mercado Pago as-is, with the amount and reference overwritten.
type CheckoutRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
