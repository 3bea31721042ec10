package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "freegym_settlement/internal/adapter/http/dto/request"
	response "freegym_settlement/internal/adapter/http/dto/response"
	"freegym_settlement/internal/domain/entities"
	"freegym_settlement/internal/usecase"
	"freegym_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles HTTP requests for approval transitions.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// Transition records one administrator decision. Unknown option fields are
// rejected so a stale portal build cannot smuggle selections past the closed
// set.
func (h *ApprovalHandler) Transition(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var req request.TransitionRequest
	if err := request.DecodeStrict(raw, &req); err != nil {
		log.Printf("[approval][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request: "+err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[approval][handler] transition start subject_id=%s status=%s", req.SubjectID, req.Status)

	res, err := h.usecase.Transition(c.Request.Context(), req.SubjectID,
		entities.ApprovalStatus(strings.ToLower(strings.TrimSpace(req.Status))),
		req.Options.ToEntity(), req.CreatedBy, req.Notes)
	if err != nil {
		log.Printf("[approval][handler] transition failed subject_id=%s err=%v", req.SubjectID, err)
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[approval][handler] transition success subject_id=%s status=%s warnings=%d", req.SubjectID, req.Status, len(res.Warnings))

	c.JSON(http.StatusOK, response.FromTransitionResult(res))
}

// TransitionBatch applies one decision to several subjects, strictly in
// order. Always 200: per-subject failures are in the body.
func (h *ApprovalHandler) TransitionBatch(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var req request.BatchTransitionRequest
	if err := request.DecodeStrict(raw, &req); err != nil {
		log.Printf("[approval][handler] invalid batch payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request: "+err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(req.SubjectIDs) == 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "subject_ids cannot be empty", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[approval][handler] batch start subjects=%d status=%s", len(req.SubjectIDs), req.Status)

	results := h.usecase.TransitionBatch(c.Request.Context(), req.SubjectIDs,
		entities.ApprovalStatus(strings.ToLower(strings.TrimSpace(req.Status))),
		req.Options.ToEntity(), req.CreatedBy, req.Notes)
	log.Printf("[approval][handler] batch done subjects=%d", len(results))

	c.JSON(http.StatusOK, response.FromBatchResults(results))
}

// History returns the audit trail for a subject.
func (h *ApprovalHandler) History(c *gin.Context) {
	subjectID := c.Param("subject_id")
	log.Printf("[approval][handler] history start subject_id=%s", subjectID)

	records, err := h.usecase.ListBySubject(c.Request.Context(), subjectID)
	if err != nil {
		log.Printf("[approval][handler] history failed subject_id=%s err=%v", subjectID, err)
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalRecords(subjectID, records))
}

func mapApprovalError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSubjectID), errors.Is(err, usecase.ErrInvalidApprovalStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyOptions):
		return pkg.NewDomainErrorSimple("OPTIONS_REQUIRED",
			"The transition carries no program options", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettlementFailed):
		return pkg.NewDomainError("SETTLEMENT_FAILED",
			"The decision was recorded but no settlement step succeeded. Retry the settlement.",
			err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
