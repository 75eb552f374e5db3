package entities

import (
	"fmt"
	"strings"
)

// Product is the catalog snapshot of a component as returned by the remote
// configuration service. Category specific attributes live in Specifications.
type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Brand          string         `json:"brand"`
	Category       string         `json:"category,omitempty"`
	Price          float64        `json:"price"`
	Stock          *int           `json:"stock,omitempty"`
	Images         []string       `json:"images,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

// Spec returns a specification field rendered as a string, or "" when absent.
func (p Product) Spec(field string) string {
	if p.Specifications == nil {
		return ""
	}
	v, ok := p.Specifications[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprintf("%v", v)
}

// PriceRange is a catalog price bucket offered as a filter shortcut.
type PriceRange struct {
	Label string   `json:"label,omitempty"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max,omitempty"`
}

// FilterOptions are the refinement values the catalog offers for a platform.
type FilterOptions struct {
	Brands      []string     `json:"brands"`
	Sockets     []string     `json:"sockets"`
	Chipsets    []string     `json:"chipsets"`
	PriceRanges []PriceRange `json:"priceRanges"`
}

// Refinement is the client-side filter set applied on top of the
// compatibility-scoped candidate list. Zero values mean "no filter".
type Refinement struct {
	Search   string
	Brand    string
	Socket   string
	Chipset  string
	MinPrice *float64
	MaxPrice *float64
}
