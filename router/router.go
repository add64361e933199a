package router

import (
	"currency-exchange-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(accountHandler *handler.AccountHandler, exchangeHandler *handler.ExchangeHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	mux.Handle("GET /api/accounts/{accountId}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))

	mux.Handle("POST /api/currency-exchange/{accountId}/exchange", handler.ErrorHandlingMiddleware(exchangeHandler.Exchange))
	mux.Handle("GET /api/currency-exchange/{accountId}/balance/{symbol}", handler.ErrorHandlingMiddleware(exchangeHandler.GetBalance))

	return mux
}
