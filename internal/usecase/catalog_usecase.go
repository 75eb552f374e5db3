package usecase

import (
	"context"
	"fmt"
	"strings"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// specFields is the fixed category to specification-field mapping.
var specFields = map[entities.Category][]string{
	entities.CategoryProcessor:    {"socket"},
	entities.CategoryMotherboard:  {"socket", "chipset"},
	entities.CategoryMemory:       {"type", "speed", "capacity"},
	entities.CategoryGraphicsCard: {"vram", "vramType"},
	entities.CategoryStorage:      {"capacity", "type", "interface"},
	entities.CategoryPowerSupply:  {"wattage", "efficiency", "modular"},
}

// SpecFieldsFor lists the specification fields a category exposes.
func SpecFieldsFor(category entities.Category) []string {
	return append([]string(nil), specFields[category]...)
}

func exposesSpec(category entities.Category, field string) bool {
	for _, f := range specFields[category] {
		if f == field {
			return true
		}
	}
	return false
}

// CatalogQuery describes one browse request.
type CatalogQuery struct {
	Platform       string
	Category       string
	CompatibleWith string
	SessionID      string
	Refinement     entities.Refinement
}

type CatalogCandidate struct {
	Product  entities.Product
	Selected bool
}

type CatalogResult struct {
	Platform   entities.Platform
	Category   entities.Category
	Candidates []CatalogCandidate
	Filters    entities.FilterOptions
}

// ICatalogClient exposes catalog browsing.
type ICatalogClient interface {
	Browse(ctx context.Context, q CatalogQuery) (CatalogResult, error)
	GetFilters(ctx context.Context, platform string) (entities.FilterOptions, error)
}

type CatalogClientDeps struct {
	Gateway  interfaces.ICatalogGateway
	Sessions interfaces.ISessionRepository
	Logger   *zap.Logger
	Metrics  *observability.Metrics
}

// CatalogClient lists compatibility-scoped candidates and refines them
// locally. Remote failures degrade to empty results.
type CatalogClient struct {
	gateway  interfaces.ICatalogGateway
	sessions sessionLoader
	logger   *zap.Logger
	metrics  *observability.Metrics
}

var _ ICatalogClient = (*CatalogClient)(nil)

func NewCatalogClient(deps CatalogClientDeps) *CatalogClient {
	logger := observability.OrNop(deps.Logger)
	return &CatalogClient{
		gateway:  deps.Gateway,
		sessions: sessionLoader{repo: deps.Sessions, now: utcNow(nil), logger: logger},
		logger:   logger,
		metrics:  deps.Metrics,
	}
}

// ListComponents returns the server-scoped candidates, or an empty list when
// the remote query fails.
func (c *CatalogClient) ListComponents(ctx context.Context, platform entities.Platform, category entities.Category, compatibleWith string) []entities.Product {
	products, err := c.gateway.ListComponents(ctx, platform, category, strings.TrimSpace(compatibleWith))
	if err != nil {
		c.degrade("list_components", fmt.Errorf("%w: %w", ErrRemoteQuery, err),
			zap.String("platform", string(platform)), zap.String("category", string(category)))
		return []entities.Product{}
	}
	if products == nil {
		products = []entities.Product{}
	}
	return products
}

// FilterOptions returns the platform filter values, or empty options when the
// remote query fails.
func (c *CatalogClient) FilterOptions(ctx context.Context, platform entities.Platform) entities.FilterOptions {
	opts, err := c.gateway.GetFilters(ctx, platform)
	if err != nil {
		c.degrade("get_filters", fmt.Errorf("%w: %w", ErrRemoteQuery, err), zap.String("platform", string(platform)))
		return entities.FilterOptions{}
	}
	return opts
}

func (c *CatalogClient) GetFilters(ctx context.Context, platform string) (entities.FilterOptions, error) {
	p, ok := entities.ParsePlatform(platform)
	if !ok {
		return entities.FilterOptions{}, ErrInvalidPlatform
	}
	return c.FilterOptions(ctx, p), nil
}

// Browse fetches candidates and filter options concurrently, refines the
// candidates and flags the ones already selected in the session's build.
func (c *CatalogClient) Browse(ctx context.Context, q CatalogQuery) (CatalogResult, error) {
	platform, ok := entities.ParsePlatform(q.Platform)
	if !ok {
		return CatalogResult{}, ErrInvalidPlatform
	}
	category, ok := entities.ParseCategory(q.Category)
	if !ok {
		return CatalogResult{}, ErrInvalidCategory
	}

	var components entities.Components
	if strings.TrimSpace(q.SessionID) != "" {
		s, err := c.sessions.load(ctx, q.SessionID)
		if err != nil {
			return CatalogResult{}, err
		}
		if s.HasConfiguration() {
			components = s.Configuration.Components
		}
	}

	var (
		products []entities.Product
		filters  entities.FilterOptions
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products = c.ListComponents(gctx, platform, category, q.CompatibleWith)
		return nil
	})
	g.Go(func() error {
		filters = c.FilterOptions(gctx, platform)
		return nil
	})
	_ = g.Wait()

	refined := Refine(category, products, q.Refinement)
	candidates := make([]CatalogCandidate, 0, len(refined))
	for _, p := range refined {
		candidates = append(candidates, CatalogCandidate{
			Product:  p,
			Selected: IsSelected(components, category, p.ID),
		})
	}

	return CatalogResult{
		Platform:   platform,
		Category:   category,
		Candidates: candidates,
		Filters:    filters,
	}, nil
}

func (c *CatalogClient) degrade(operation string, err error, fields ...zap.Field) {
	c.metrics.DegradedCall(operation)
	c.logger.Warn("catalog query degraded to empty result", append(fields, zap.String("operation", operation), zap.Error(err))...)
}

// Refine applies the client-side filters. It is pure, keeps the input order
// and is idempotent.
func Refine(category entities.Category, products []entities.Product, r entities.Refinement) []entities.Product {
	search := strings.ToLower(strings.TrimSpace(r.Search))
	brand := strings.ToLower(strings.TrimSpace(r.Brand))
	socket := strings.TrimSpace(r.Socket)
	chipset := strings.TrimSpace(r.Chipset)

	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if r.MinPrice != nil && p.Price < *r.MinPrice {
			continue
		}
		if r.MaxPrice != nil && p.Price > *r.MaxPrice {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(p.Brand), brand) {
			continue
		}
		if socket != "" && exposesSpec(category, "socket") && p.Spec("socket") != socket {
			continue
		}
		if chipset != "" && exposesSpec(category, "chipset") && p.Spec("chipset") != chipset {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsSelected reports whether productID is the singular selection of category,
// or appears anywhere in the storage list.
func IsSelected(components entities.Components, category entities.Category, productID string) bool {
	if productID == "" {
		return false
	}
	for _, sel := range components.Slot(category).Selections() {
		if sel.ProductID == productID {
			return true
		}
	}
	return false
}
