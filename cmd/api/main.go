package main

import (
	_ "ordemfacil/docs"
	"ordemfacil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OrdemFacil API
// @version         1.0
// @description     Service-order management for a repair shop: orders with an audit log, a services/products catalog, login sessions and JSON snapshot sync.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
