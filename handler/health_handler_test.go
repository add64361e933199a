// handler/health_handler_test.go
package handler_test

import (
	"currency-exchange-api/handler"
	"currency-exchange-api/logger"
	"currency-exchange-api/router"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestHealthCheck_Integration(t *testing.T) {
	// Setup router. For this test, handlers can be nil.
	r := router.NewRouter(nil, nil)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	// Execute
	r.ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}

func TestGetAccount_InvalidID(t *testing.T) {
	h := handler.NewAccountHandler(nil)

	req, _ := http.NewRequest("GET", "/api/accounts/not-a-uuid", nil)
	req.SetPathValue("accountId", "not-a-uuid")
	rr := httptest.NewRecorder()

	appErr := h.GetAccount(rr, req)

	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}
