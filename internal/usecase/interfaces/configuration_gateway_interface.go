package interfaces

import (
	"context"

	"pcbuild_configurator/internal/domain/entities"
)

// CreateConfigurationInput is the body of the remote create call.
type CreateConfigurationInput struct {
	ConfigName   string
	Platform     entities.Platform
	UseCase      string
	BudgetTarget float64
	SessionID    string
}

// IConfigurationGateway abstracts the remote persistence of configurations.
//
// Every method returns the service's authoritative Configuration; callers
// replace their local copy with it and never patch fields.
type IConfigurationGateway interface {
	Create(ctx context.Context, in CreateConfigurationInput) (entities.Configuration, error)
	AddComponent(ctx context.Context, configID string, category entities.Category, productID string, quantity int) (entities.Configuration, error)
	RemoveComponent(ctx context.Context, configID string, category entities.Category, storageIndex *int) (entities.Configuration, error)
}
