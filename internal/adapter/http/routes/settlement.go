package routes

import (
	"freegym_settlement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApprovals    = "/approvals"
	PathInstallments = "/installments"
	PathDeposits     = "/deposits"
)

func addApprovalRoutes(rg *gin.RouterGroup, h *handlers.ApprovalHandler) {
	approvals := rg.Group(PathApprovals)
	{
		approvals.POST("/transition", h.Transition)
		approvals.POST("/transition-batch", h.TransitionBatch)
		approvals.GET("/:subject_id", h.History)
	}
}

func addInstallmentRoutes(rg *gin.RouterGroup, h *handlers.InstallmentHandler) {
	installments := rg.Group(PathInstallments)
	{
		installments.GET("/:request_id", h.GetPlan)
		installments.PUT("/:request_id/legs", h.SetLegs)
		// Irreversible operations; both handlers require confirm=true.
		installments.POST("/:request_id/legs/:number/lock", h.LockLeg)
		installments.POST("/:request_id/third/delete", h.DeleteThirdLeg)
	}
}

func addDepositRoutes(rg *gin.RouterGroup, h *handlers.DepositHandler) {
	deposits := rg.Group(PathDeposits)
	{
		deposits.GET("/:user_id", h.Get)
		deposits.POST("/:user_id/provision", h.Provision)
	}
}
