// file: router/router_test.go

package router_test

import (
	"context"
	"currency-exchange-api/app"
	"currency-exchange-api/logger"
	"currency-exchange-api/service"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// --- Test Doubles ---

type stubRates struct {
	rate decimal.Decimal
	err  error
}

func (s stubRates) GetUSDMidRate(ctx context.Context) (decimal.Decimal, error) {
	return s.rate, s.err
}

type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (stubCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(1, nil)
}

// newTestApp wires the full application over a mocked database, so requests
// run through the real router, middleware, handlers, services and repository.
func newTestApp(t *testing.T, rates service.RateProvider) (*app.TestApp, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return app.NewTestApp(db, stubCache{}, rates), mock
}

// --- Test Suites ---

func TestCreateAccount_Integration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		testApp, mock := newTestApp(t, stubRates{})

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (id, first_name, last_name) VALUES ($1, $2, $3) RETURNING created_at`)).
			WithArgs(sqlmock.AnyArg(), "Jan", "Kowalski").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO currency_balances (account_id, symbol, balance) VALUES ($1, $2, $3) RETURNING id, created_at`)).
			WithArgs(sqlmock.AnyArg(), "PLN", "1000.00").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
		mock.ExpectCommit()

		requestBody := `{"first_name":"Jan","last_name":"Kowalski","balances":[{"symbol":"PLN","balance":"1000.00"}]}`
		req, _ := http.NewRequest("POST", "/api/accounts", strings.NewReader(requestBody))
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var accountID uuid.UUID
		err := json.Unmarshal(rr.Body.Bytes(), &accountID)
		assert.NoError(t, err, "Response body should be the new account's UUID")
		assert.NotEqual(t, uuid.Nil, accountID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing PLN balance is rejected", func(t *testing.T) {
		testApp, mock := newTestApp(t, stubRates{})

		requestBody := `{"first_name":"Jan","last_name":"Kowalski","balances":[{"symbol":"USD","balance":"100.00"}]}`
		req, _ := http.NewRequest("POST", "/api/accounts", strings.NewReader(requestBody))
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "account must include an initial balance in PLN.")
		assert.NoError(t, mock.ExpectationsWereMet(), "No query should reach the database")
	})
}

func TestExchange_Integration(t *testing.T) {
	accountID := uuid.New()

	expectAccountLookup := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, created_at FROM accounts WHERE id = $1`)).
			WithArgs(accountID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "created_at"}).
				AddRow(accountID.String(), "Jan", "Kowalski", time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, symbol, balance, created_at FROM currency_balances WHERE account_id = $1`)).
			WithArgs(accountID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "symbol", "balance", "created_at"}).
				AddRow(int64(1), accountID.String(), "PLN", "1000.00", time.Now()).
				AddRow(int64(2), accountID.String(), "USD", "250.00", time.Now()))
	}

	lockedBalanceQuery := regexp.QuoteMeta(`SELECT id, account_id, symbol, balance FROM currency_balances WHERE account_id = $1 AND symbol = $2 FOR UPDATE`)

	t.Run("successful exchange debits and credits both balances", func(t *testing.T) {
		testApp, mock := newTestApp(t, stubRates{rate: decimal.RequireFromString("4.00")})

		expectAccountLookup(mock)
		mock.ExpectBegin()
		mock.ExpectQuery(lockedBalanceQuery).
			WithArgs(accountID.String(), "PLN").
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "symbol", "balance"}).
				AddRow(int64(1), accountID.String(), "PLN", "1000.00"))
		mock.ExpectQuery(lockedBalanceQuery).
			WithArgs(accountID.String(), "USD").
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "symbol", "balance"}).
				AddRow(int64(2), accountID.String(), "USD", "250.00"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE currency_balances SET balance = $1 WHERE id = $2`)).
			WithArgs("900.00", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE currency_balances SET balance = $1 WHERE id = $2`)).
			WithArgs("275.00", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		requestBody := `{"amount":"100.00","from_currency":"PLN","to_currency":"USD"}`
		req, _ := http.NewRequest("POST", "/api/currency-exchange/"+accountID.String()+"/exchange", strings.NewReader(requestBody))
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient funds rolls back without writes", func(t *testing.T) {
		testApp, mock := newTestApp(t, stubRates{rate: decimal.RequireFromString("4.00")})

		expectAccountLookup(mock)
		mock.ExpectBegin()
		mock.ExpectQuery(lockedBalanceQuery).
			WithArgs(accountID.String(), "PLN").
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "symbol", "balance"}).
				AddRow(int64(1), accountID.String(), "PLN", "50.00"))
		mock.ExpectQuery(lockedBalanceQuery).
			WithArgs(accountID.String(), "USD").
			WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "symbol", "balance"}).
				AddRow(int64(2), accountID.String(), "USD", "250.00"))
		mock.ExpectRollback()

		requestBody := `{"amount":"100.00","from_currency":"PLN","to_currency":"USD"}`
		req, _ := http.NewRequest("POST", "/api/currency-exchange/"+accountID.String()+"/exchange", strings.NewReader(requestBody))
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "insufficient funds in the account")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetBalance_Integration(t *testing.T) {
	accountID := uuid.New()
	testApp, mock := newTestApp(t, stubRates{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, symbol, balance, created_at FROM currency_balances WHERE account_id = $1 AND symbol = $2`)).
		WithArgs(accountID.String(), "USD").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "symbol", "balance", "created_at"}).
			AddRow(int64(2), accountID.String(), "USD", "250.00", time.Now()))

	req, _ := http.NewRequest("GET", "/api/currency-exchange/"+accountID.String()+"/balance/USD", nil)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"250.00"`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
