package handler

import (
	"currency-exchange-api/common"
	"currency-exchange-api/logger"
	"currency-exchange-api/model"
	"currency-exchange-api/nbp"
	"currency-exchange-api/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExchangeHandler holds dependencies for currency-exchange handlers.
type ExchangeHandler struct {
	service *service.ExchangeService
}

func NewExchangeHandler(s *service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{service: s}
}

// Exchange godoc
// @Summary      Exchange currency between PLN and USD
// @Description  Performs a currency exchange between two balances of one account at the current NBP mid rate.
// @Tags         currency-exchange
// @Accept       json
// @Produce      json
// @Param        accountId path string true "ID of the account to perform the exchange on"
// @Param        exchange body model.ExchangeRequest true "Amount and the currency pair"
// @Success      204  "Currency exchange successful"
// @Failure      400  {object}  common.AppError "Identical currencies, insufficient funds or invalid amount"
// @Failure      404  {object}  common.AppError "Account or currency balance not found"
// @Failure      502  {object}  common.AppError "Rate service returned an unusable response"
// @Failure      503  {object}  common.AppError "Rate service unavailable"
// @Router       /api/currency-exchange/{accountId}/exchange [post]
func (h *ExchangeHandler) Exchange(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	var req model.ExchangeRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	if !req.Amount.IsPositive() {
		return common.NewAppError(http.StatusBadRequest, service.ErrInvalidAmount.Error(), nil)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_id":    accountID,
		"amount":        req.Amount,
		"from_currency": req.FromCurrency,
		"to_currency":   req.ToCurrency,
	})
	log.Info("Currency exchange request received")

	err = h.service.Exchange(r.Context(), accountID, req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		// Map specific business logic errors to appropriate HTTP status codes.
		switch {
		case errors.Is(err, service.ErrAccountNotFound), errors.Is(err, service.ErrBalanceNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case errors.Is(err, service.ErrSameCurrencyExchange),
			errors.Is(err, service.ErrInsufficientFunds),
			errors.Is(err, service.ErrInvalidAmount):
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, nbp.ErrRateUnavailable):
			return common.NewAppError(http.StatusServiceUnavailable, err.Error(), err)
		case errors.Is(err, nbp.ErrBadRateResponse):
			return common.NewAppError(http.StatusBadGateway, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process exchange", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GetBalance godoc
// @Summary      Get balance
// @Description  Gets the current balance of a given currency within an account.
// @Tags         currency-exchange
// @Produce      json
// @Param        accountId path string true "ID of the account"
// @Param        symbol path string true "Currency symbol (PLN or USD)"
// @Success      200  {string}  string "Current balance"
// @Failure      400  {object}  common.AppError "Invalid account ID or currency symbol"
// @Failure      404  {object}  common.AppError "Currency balance not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/currency-exchange/{accountId}/balance/{symbol} [get]
func (h *ExchangeHandler) GetBalance(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	symbol, err := model.ParseSymbol(r.PathValue("symbol"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	balance, err := h.service.GetBalance(r.Context(), accountID, symbol)
	if err != nil {
		if errors.Is(err, service.ErrBalanceNotFound) {
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve balance", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(balance)
	return nil
}
