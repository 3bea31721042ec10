package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "freegym_settlement/internal/adapter/http/dto/request"
	response "freegym_settlement/internal/adapter/http/dto/response"
	"freegym_settlement/internal/usecase"
	"freegym_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// InstallmentHandler handles HTTP requests for installment plans. Locking
// and third-leg deletion are irreversible, so both demand an explicit
// confirm flag from the portal's confirmation dialog.

type InstallmentHandler struct {
	usecase usecase.IInstallmentUseCase
}

func NewInstallmentHandler(uc usecase.IInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{usecase: uc}
}

func (h *InstallmentHandler) GetPlan(c *gin.Context) {
	requestID := c.Param("request_id")
	log.Printf("[installment][handler] get-plan start request_id=%s", requestID)

	plan, err := h.usecase.GetPlan(c.Request.Context(), requestID)
	if err != nil {
		log.Printf("[installment][handler] get-plan failed request_id=%s err=%v", requestID, err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func (h *InstallmentHandler) SetLegs(c *gin.Context) {
	requestID := c.Param("request_id")
	var req request.SetLegsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[installment][handler] invalid payload request_id=%s err=%v", requestID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[installment][handler] set-legs start request_id=%s legs=%d", requestID, len(req.Legs))

	res, err := h.usecase.SetLegAmounts(c.Request.Context(), requestID, req.ToEntities())
	if err != nil {
		log.Printf("[installment][handler] set-legs failed request_id=%s err=%v", requestID, err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[installment][handler] set-legs success request_id=%s skipped=%d warnings=%d", requestID, len(res.SkippedLegs), len(res.Warnings))

	c.JSON(http.StatusOK, response.FromSetLegsResult(res))
}

func (h *InstallmentHandler) LockLeg(c *gin.Context) {
	requestID := c.Param("request_id")
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid leg number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var req request.LockLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !req.Confirm {
		appErr := pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Locking an installment is irreversible and must be confirmed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[installment][handler] lock start request_id=%s leg=%d locked_by=%s", requestID, number, req.LockedBy)

	if err := h.usecase.LockLeg(c.Request.Context(), requestID, number, req.LockedBy); err != nil {
		log.Printf("[installment][handler] lock failed request_id=%s leg=%d err=%v", requestID, number, err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[installment][handler] lock success request_id=%s leg=%d", requestID, number)

	c.Status(http.StatusNoContent)
}

func (h *InstallmentHandler) DeleteThirdLeg(c *gin.Context) {
	requestID := c.Param("request_id")
	var req request.DeleteThirdLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !req.Confirm {
		appErr := pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Deleting the third installment is irreversible and must be confirmed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[installment][handler] delete-third start request_id=%s deleted_by=%s", requestID, req.DeletedBy)

	if err := h.usecase.DeleteThirdLeg(c.Request.Context(), requestID, req.DeletedBy); err != nil {
		log.Printf("[installment][handler] delete-third failed request_id=%s err=%v", requestID, err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[installment][handler] delete-third success request_id=%s", requestID)

	c.Status(http.StatusNoContent)
}

func mapInstallmentError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidLegNumber),
		errors.Is(err, usecase.ErrInvalidLegAmount),
		errors.Is(err, usecase.ErrInvalidLegPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstallmentPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Installment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrThirdLegLocked):
		return pkg.NewDomainErrorSimple("THIRD_LEG_LOCKED", "The third installment is locked and cannot be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
