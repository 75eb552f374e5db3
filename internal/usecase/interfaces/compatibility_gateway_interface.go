package interfaces

import (
	"context"

	"pcbuild_configurator/internal/domain/entities"
)

// ICompatibilityGateway asks the remote rule engine for a verdict on a configuration.
type ICompatibilityGateway interface {
	CheckCompatibility(ctx context.Context, configID string) (entities.Verdict, error)
}
