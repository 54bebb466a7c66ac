package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubgate/internal/application/access/usecases"
	"clubgate/internal/interfaces/dto"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

// CommitteeHandler exposes the manual-review decisions. Its routes sit
// behind the shared-secret committee middleware.
type CommitteeHandler struct {
	approve RequestApprover
	reject  RequestRejecter
	logger  logger.Interface
}

func NewCommitteeHandler(approve RequestApprover, reject RequestRejecter, log logger.Interface) *CommitteeHandler {
	return &CommitteeHandler{
		approve: approve,
		reject:  reject,
		logger:  log,
	}
}

func (h *CommitteeHandler) ApproveRequest(c *gin.Context) {
	id, err := dto.ParseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.approve.Execute(c.Request.Context(), usecases.ApproveManualRequestCommand{RequestID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request approved and join link sent", nil)
}

func (h *CommitteeHandler) RejectRequest(c *gin.Context) {
	id, err := dto.ParseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.reject.Execute(c.Request.Context(), usecases.RejectManualRequestCommand{RequestID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request rejected", nil)
}
