package interfaces

import (
	"context"

	"pcbuild_configurator/internal/domain/entities"
)

// ICatalogGateway lists compatibility-scoped candidates and filter options.
type ICatalogGateway interface {
	ListComponents(ctx context.Context, platform entities.Platform, category entities.Category, compatibleWith string) ([]entities.Product, error)
	GetFilters(ctx context.Context, platform entities.Platform) (entities.FilterOptions, error)
}
