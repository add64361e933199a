package handler

import (
	"currency-exchange-api/common"
	"currency-exchange-api/logger"
	"currency-exchange-api/model"
	"currency-exchange-api/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary      Create a new account
// @Description  Creates a new multi-currency account with initial balances. The balances must include PLN.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account body model.CreateAccountRequest true "Owner name and initial currency balances"
// @Success      201  {string}  string "UUID of the created account"
// @Failure      400  {object}  common.AppError "Validation error"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"balances":   len(req.Balances),
	})
	log.Info("Create account request received")

	accountID, err := h.service.CreateAccount(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoBalances),
			errors.Is(err, service.ErrMissingPLNBalance),
			errors.Is(err, service.ErrNegativeBalance),
			errors.Is(err, service.ErrDuplicateCurrency):
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(accountID)
	return nil
}

// GetAccount godoc
// @Summary      Get account details
// @Description  Fetches account details including all currency balances by account ID.
// @Tags         accounts
// @Produce      json
// @Param        accountId path string true "Account ID"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError "Invalid account ID"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /api/accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	account, err := h.service.GetAccountDetails(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}
