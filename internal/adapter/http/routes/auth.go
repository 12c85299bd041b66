package routes

import (
	"ordemfacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST("/login", authHandler.Login)
}

func addAccountRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST("/logout", authHandler.Logout)

	account := rg.Group("/account")
	{
		account.PATCH("/password", authHandler.ChangePassword)
		account.PATCH("/username", authHandler.ChangeUsername)
	}
}
