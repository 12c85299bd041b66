package routes

import (
	"ordemfacil/internal/adapter/http/handlers"
	"ordemfacil/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathSync = "/sync"

func addSyncRoutes(rg *gin.RouterGroup, syncHandler *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.GET("/config", syncHandler.GetConfig)
		sync.PUT("/config", middleware.RequireAdmin(), syncHandler.PutConfig)
		sync.POST("/now", middleware.RequireAdmin(), syncHandler.SyncNow)
		sync.POST("/pull", middleware.RequireAdmin(), syncHandler.Pull)
	}
}
