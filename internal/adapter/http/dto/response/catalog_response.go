package response

import (
	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase"
)

type CandidateResponse struct {
	entities.Product
	Selected bool `json:"selected"`
}

type CatalogResponse struct {
	Platform   string                 `json:"platform"`
	Category   string                 `json:"category"`
	SpecFields []string               `json:"spec_fields"`
	Candidates []CandidateResponse    `json:"candidates"`
	Filters    entities.FilterOptions `json:"filters"`
}

func FromCatalogResult(res usecase.CatalogResult) CatalogResponse {
	out := CatalogResponse{
		Platform:   string(res.Platform),
		Category:   string(res.Category),
		SpecFields: usecase.SpecFieldsFor(res.Category),
		Candidates: make([]CandidateResponse, 0, len(res.Candidates)),
		Filters:    FromFilterOptions(res.Filters),
	}
	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, CandidateResponse{Product: c.Product, Selected: c.Selected})
	}
	return out
}

// FromFilterOptions renders absent option lists as empty arrays.
func FromFilterOptions(f entities.FilterOptions) entities.FilterOptions {
	f.Brands = nonNil(f.Brands)
	f.Sockets = nonNil(f.Sockets)
	f.Chipsets = nonNil(f.Chipsets)
	f.PriceRanges = nonNil(f.PriceRanges)
	return f
}
