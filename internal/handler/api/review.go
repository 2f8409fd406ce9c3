package api

import (
	"net/http"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Submit review
// @Description Review the counterparty of a completed order. Resubmitting replaces the earlier review.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.SubmitReviewRequest true "Review"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	author, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	rev, err := h.cmds.SubmitReview(c.Request.Context(), orderID, author, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReview(rev))
}
