package routes

import (
	"ordemfacil/internal/adapter/http/handlers"
	"ordemfacil/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.List)
		catalog.POST("", catalogHandler.Create)
		catalog.GET("/export", catalogHandler.Export)
		catalog.PATCH("/:id", catalogHandler.Patch)
		catalog.DELETE("/:id", catalogHandler.Delete)

		catalog.POST("/import", middleware.RequireAdmin(), catalogHandler.Import)
	}
}
