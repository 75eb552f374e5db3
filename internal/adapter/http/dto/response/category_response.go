package response

import (
	"slices"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase"
)

type CategoryResponse struct {
	Key        string   `json:"key"`
	Multiple   bool     `json:"multiple"`
	Required   bool     `json:"required"`
	SpecFields []string `json:"spec_fields"`
}

// FromCategory describes a category; Required follows the active review gate.
func FromCategory(cat entities.Category, gate usecase.ReviewGate) CategoryResponse {
	return CategoryResponse{
		Key:        string(cat),
		Multiple:   cat.Kind() == entities.KindMany,
		Required:   slices.Contains(gate.Missing(entities.Components{}), cat),
		SpecFields: usecase.SpecFieldsFor(cat),
	}
}
