package request

import (
	"strings"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase"
)

// CatalogQueryRequest is bound from the components listing query string.
type CatalogQueryRequest struct {
	Category       string   `form:"category" binding:"required"`
	CompatibleWith string   `form:"compatible_with"`
	SessionID      string   `form:"session_id"`
	Search         string   `form:"search"`
	Brand          string   `form:"brand"`
	Socket         string   `form:"socket"`
	Chipset        string   `form:"chipset"`
	MinPrice       *float64 `form:"min_price"`
	MaxPrice       *float64 `form:"max_price"`
}

func (r CatalogQueryRequest) ToQuery(platform string) usecase.CatalogQuery {
	return usecase.CatalogQuery{
		Platform:       platform,
		Category:       strings.TrimSpace(r.Category),
		CompatibleWith: strings.TrimSpace(r.CompatibleWith),
		SessionID:      strings.TrimSpace(r.SessionID),
		Refinement: entities.Refinement{
			Search:   strings.TrimSpace(r.Search),
			Brand:    strings.TrimSpace(r.Brand),
			Socket:   strings.TrimSpace(r.Socket),
			Chipset:  strings.TrimSpace(r.Chipset),
			MinPrice: r.MinPrice,
			MaxPrice: r.MaxPrice,
		},
	}
}
