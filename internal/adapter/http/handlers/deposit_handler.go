package handlers

import (
	"errors"
	"log"
	"net/http"

	request "freegym_settlement/internal/adapter/http/dto/request"
	response "freegym_settlement/internal/adapter/http/dto/response"
	"freegym_settlement/internal/usecase"
	"freegym_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles HTTP requests for lesson deposits.

type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

func (h *DepositHandler) Get(c *gin.Context) {
	userID := c.Param("user_id")
	log.Printf("[deposit][handler] get start user_id=%s", userID)

	deposit, err := h.usecase.Get(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[deposit][handler] get failed user_id=%s err=%v", userID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

func (h *DepositHandler) Provision(c *gin.Context) {
	userID := c.Param("user_id")
	var req request.ProvisionDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[deposit][handler] invalid payload user_id=%s err=%v", userID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] provision start user_id=%s sessions=%d replace=%t", userID, req.SessionCount, req.ReplaceExisting)

	deposit, err := h.usecase.Provision(c.Request.Context(), userID, req.SessionCount, req.ReplaceExisting, req.CreatedBy)
	if err != nil {
		log.Printf("[deposit][handler] provision failed user_id=%s err=%v", userID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] provision success user_id=%s remaining=%d", userID, deposit.Remaining())

	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

func mapDepositError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositUserID), errors.Is(err, usecase.ErrInvalidSessionCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Lesson deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
