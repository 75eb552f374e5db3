package routes

import (
	"pcbuild_configurator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathBuilds     = "/builds"
	PathCatalog    = "/catalog"
	PathCategories = "/categories"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addBuildRoutes(rg *gin.RouterGroup, buildHandler *handlers.BuildHandler, checkoutHandler *handlers.CheckoutHandler) {
	builds := rg.Group(PathBuilds)
	{
		builds.POST("", buildHandler.CreateSession)
		builds.GET("/:session_id", buildHandler.GetSession)
		builds.POST("/:session_id/platform", buildHandler.SelectPlatform)
		builds.PUT("/:session_id/components", buildHandler.AddComponent)
		builds.DELETE("/:session_id/components", buildHandler.RemoveComponent)
		builds.POST("/:session_id/step", buildHandler.ChangeStep)
		builds.POST("/:session_id/abandon", buildHandler.Abandon)
		builds.POST("/:session_id/checkout", checkoutHandler.Checkout)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCategories, catalogHandler.Categories)

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/:platform/components", catalogHandler.ListComponents)
		catalog.GET("/:platform/filters", catalogHandler.GetFilters)
	}
}
