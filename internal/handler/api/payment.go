package api

import (
	"net/http"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Apply payment event
// @Description Apply a provider outcome to its order. Replays of the same event id are acknowledged without effect (admin only).
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentEventRequest true "Provider event"
// @Success 200 {object} resdto.PaymentEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/events [post]
func (h *PaymentHandler) ApplyEvent(c *gin.Context) {
	var req reqdto.PaymentEventRequest
	if !bindJSON(c, &req) {
		return
	}
	applied, err := h.cmds.ApplyPaymentEvent(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentEventResponse{Applied: applied})
}
