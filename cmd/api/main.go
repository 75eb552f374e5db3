package main

import (
	"log"

	_ "pcbuild_configurator/docs"
	"pcbuild_configurator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PC Build Configurator API
// @version         1.0
// @description     Guided custom PC build sessions: platform choice, component selection with live pricing and remote compatibility verdicts, review and checkout.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
