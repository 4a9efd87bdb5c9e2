package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/api-sage/mini-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/mini-ledger/src/internal/commons"
	"github.com/api-sage/mini-ledger/src/internal/domain"
	"github.com/api-sage/mini-ledger/src/internal/logger"
)

const maxBodyBytes = 1 << 20

type AccountService interface {
	CreateAccount(ctx context.Context, body []byte) (models.CreateAccountResponse, error)
	GetBalance(ctx context.Context, accountNumber string) (models.BalanceResponse, error)
	Deposit(ctx context.Context, accountNumber string, body []byte) (models.BalanceResponse, error)
	Withdraw(ctx context.Context, accountNumber string, body []byte) (models.BalanceResponse, error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r chi.Router) {
	r.Post("/accounts", c.createAccount)
	r.Get("/accounts/{accountNumber}/balance", c.getBalance)
	r.Post("/accounts/{accountNumber}/deposit", c.deposit)
	r.Post("/accounts/{accountNumber}/withdraw", c.withdraw)
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := readBody(w, r)
	if err != nil {
		c.fail(w, r, domain.ErrMalformedRequest, start)
		return
	}
	logRequest(r, json.RawMessage(body))

	response, err := c.service.CreateAccount(r.Context(), body)
	if err != nil {
		c.fail(w, r, err, start)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) getBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetBalance(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		c.fail(w, r, err, start)
		return
	}

	commons.WriteJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.moveFunds(w, r, c.service.Deposit)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.moveFunds(w, r, c.service.Withdraw)
}

func (c *AccountController) moveFunds(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, accountNumber string, body []byte) (models.BalanceResponse, error),
) {
	start := time.Now()

	// An unreadable body is handed on as empty so an unknown account still
	// reports 404 ahead of the payload error.
	body, err := readBody(w, r)
	if err != nil {
		logError(r, err, nil)
		body = nil
	}
	logRequest(r, json.RawMessage(body))

	response, err := op(r.Context(), chi.URLParam(r, "accountNumber"), body)
	if err != nil {
		c.fail(w, r, err, start)
		return
	}

	commons.WriteJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) fail(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logError(r, err, logger.Fields{"status": status})
	}

	response := commons.ErrorResponse(message)
	commons.WriteJSON(w, status, response)
	logResponse(r, status, response, start)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return http.StatusNotFound, commons.ErrRecordNotFound.Error()
	case errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrMissingAmount),
		errors.Is(err, domain.ErrInvalidAmountFormat),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrZeroAmount),
		errors.Is(err, domain.ErrTooManyDecimalPlaces),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidInitialBalance),
		errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAccountNumbersExhausted):
		return http.StatusInternalServerError, "Unable to create account right now"
	default:
		return http.StatusInternalServerError, "Unable to process request right now"
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}
