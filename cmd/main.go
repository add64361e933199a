// cmd/main.go
package main

import (
	"currency-exchange-api/app"

	_ "currency-exchange-api/docs"
)

// @title           Currency Exchange API
// @version         1.0
// @description     Multi-currency accounts with PLN/USD exchange at the current NBP mid rate.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
