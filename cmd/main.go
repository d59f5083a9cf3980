// cmd/main.go
package main

import (
	"github.com/DavidL050/Forex/app"
)

// @title           Forex Dashboard API
// @version         1.0
// @description     Exchange rates, price history and per-user currency preferences behind token authentication.

// @contact.name   API Support

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
