package handlers

import (
	"net/http"

	request "pcbuild_configurator/internal/adapter/http/dto/request"
	response "pcbuild_configurator/internal/adapter/http/dto/response"
	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves compatibility-scoped candidate listings.
// Remote catalog failures are degraded to empty results by the use case.
type CatalogHandler struct {
	catalog usecase.ICatalogClient
	gate    usecase.ReviewGate
	logger  *zap.Logger
}

func NewCatalogHandler(catalog usecase.ICatalogClient, gate usecase.ReviewGate, logger *zap.Logger) *CatalogHandler {
	if gate == "" {
		gate = usecase.ReviewGateStrict
	}
	return &CatalogHandler{catalog: catalog, gate: gate, logger: observability.OrNop(logger)}
}

// ListComponents godoc
// @Summary      List candidate components
// @Tags         catalog
// @Produce      json
// @Param        platform         path   string  true   "intel or amd"
// @Param        category         query  string  true   "Component category key"
// @Param        compatible_with  query  string  false  "Configuration ID scoping the candidates"
// @Param        session_id       query  string  false  "Build session used to flag selected products"
// @Param        search           query  string  false  "Name or brand substring"
// @Param        brand            query  string  false  "Brand substring"
// @Param        socket           query  string  false  "Exact socket"
// @Param        chipset          query  string  false  "Exact chipset"
// @Param        min_price        query  number  false  "Inclusive lower price bound"
// @Param        max_price        query  number  false  "Inclusive upper price bound"
// @Success      200  {object}  response.CatalogResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /catalog/{platform}/components [get]
func (h *CatalogHandler) ListComponents(c *gin.Context) {
	var q request.CatalogQueryRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	res, err := h.catalog.Browse(c.Request.Context(), q.ToQuery(c.Param("platform")))
	if err != nil {
		appErr := mapBuildError(err)
		h.logger.Info("catalog request rejected", zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogResult(res))
}

// GetFilters godoc
// @Summary      List refinement options for a platform
// @Tags         catalog
// @Produce      json
// @Param        platform  path  string  true  "intel or amd"
// @Success      200  {object}  entities.FilterOptions
// @Failure      400  {object}  pkg.HTTPError
// @Router       /catalog/{platform}/filters [get]
func (h *CatalogHandler) GetFilters(c *gin.Context) {
	filters, err := h.catalog.GetFilters(c.Request.Context(), c.Param("platform"))
	if err != nil {
		appErr := mapBuildError(err)
		h.logger.Info("filters request rejected", zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromFilterOptions(filters))
}

// Categories godoc
// @Summary      List component categories
// @Description  Cardinality, exposed specification fields and whether the active review gate requires the category.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.CategoryResponse
// @Router       /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	out := make([]response.CategoryResponse, 0, len(entities.AllCategories))
	for _, cat := range entities.AllCategories {
		out = append(out, response.FromCategory(cat, h.gate))
	}
	c.JSON(http.StatusOK, out)
}
