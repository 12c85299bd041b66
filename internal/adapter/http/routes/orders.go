package routes

import (
	"ordemfacil/internal/adapter/http/handlers"
	"ordemfacil/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathLogs   = "/logs"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.List)
		orders.POST("", orderHandler.Create)
		orders.GET("/export", orderHandler.Export)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id", orderHandler.Patch)
		orders.DELETE("/:id", orderHandler.Delete)

		// Collection-replacing operations are admin-only.
		orders.POST("/snapshot", middleware.RequireAdmin(), orderHandler.LoadSnapshot)
		orders.POST("/import", middleware.RequireAdmin(), orderHandler.ImportSpreadsheet)
	}

	rg.GET(PathLogs, orderHandler.Logs)
}
