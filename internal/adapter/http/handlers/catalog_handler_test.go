package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pcbuild_configurator/internal/adapter/http/handlers/mocks"
	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/catalog/:platform/components", h.ListComponents)
	r.GET("/v1/catalog/:platform/filters", h.GetFilters)
	r.GET("/v1/categories", h.Categories)
	return r
}

func TestCatalogHandler_ListComponents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCatalogHandler(mocks.NewMockICatalogClient(ctrl), "", nil)

		w := serve(newCatalogRouter(h), http.MethodGet, "/v1/catalog/intel/components", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("query forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogClient(ctrl)
		h := NewCatalogHandler(catalog, "", nil)

		catalog.EXPECT().Browse(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q usecase.CatalogQuery) (usecase.CatalogResult, error) {
				if q.Platform != "amd" || q.Category != "motherboard" || q.CompatibleWith != "cfg-1" || q.SessionID != "s-1" {
					t.Fatalf("unexpected query: %+v", q)
				}
				if q.Refinement.Socket != "AM5" || q.Refinement.MaxPrice == nil || *q.Refinement.MaxPrice != 200 {
					t.Fatalf("unexpected refinement: %+v", q.Refinement)
				}
				return usecase.CatalogResult{
					Platform: entities.PlatformAMD,
					Category: entities.CategoryMotherboard,
					Candidates: []usecase.CatalogCandidate{
						{Product: entities.Product{ID: "mb-4", Name: "Prime B650", Price: 180}, Selected: true},
					},
				}, nil
			},
		)

		w := serve(newCatalogRouter(h), http.MethodGet,
			"/v1/catalog/amd/components?category=motherboard&compatible_with=cfg-1&session_id=s-1&socket=AM5&max_price=200", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		candidates, _ := body["candidates"].([]any)
		if len(candidates) != 1 {
			t.Fatalf("expected one candidate: %v", body)
		}
		first, _ := candidates[0].(map[string]any)
		if first["id"] != "mb-4" || first["selected"] != true {
			t.Fatalf("unexpected candidate: %v", first)
		}
	})

	t.Run("invalid platform", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mocks.NewMockICatalogClient(ctrl)
		h := NewCatalogHandler(catalog, "", nil)

		catalog.EXPECT().Browse(gomock.Any(), gomock.Any()).Return(usecase.CatalogResult{}, usecase.ErrInvalidPlatform)

		w := serve(newCatalogRouter(h), http.MethodGet, "/v1/catalog/arm/components?category=memory", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mocks.NewMockICatalogClient(ctrl)
	h := NewCatalogHandler(catalog, "", nil)

	catalog.EXPECT().GetFilters(gomock.Any(), "intel").Return(entities.FilterOptions{Sockets: []string{"LGA1700"}}, nil)

	w := serve(newCatalogRouter(h), http.MethodGet, "/v1/catalog/intel/filters", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if brands, ok := body["brands"].([]any); !ok || len(brands) != 0 {
		t.Fatalf("expected empty brands array: %v", body)
	}
	if sockets, _ := body["sockets"].([]any); len(sockets) != 1 {
		t.Fatalf("unexpected sockets: %v", body)
	}
}

func TestCatalogHandler_Categories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(nil, usecase.ReviewGateStrict, nil)

	w := serve(newCatalogRouter(h), http.MethodGet, "/v1/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != len(entities.AllCategories) {
		t.Fatalf("expected %d categories, got %d", len(entities.AllCategories), len(body))
	}
}
