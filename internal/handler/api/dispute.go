package api

import (
	"net/http"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	cmds commands.DisputeCommands
	q    queries.OrderQueries
}

func NewDisputeHandler(cmds commands.DisputeCommands, q queries.OrderQueries) *DisputeHandler {
	return &DisputeHandler{cmds: cmds, q: q}
}

// @Summary Open dispute
// @Description Freeze an in-flight order pending admin resolution (either party)
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.OpenDisputeRequest true "Open dispute request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/disputes [post]
func (h *DisputeHandler) Open(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	opener, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.OpenDisputeRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.OpenDispute(c.Request.Context(), orderID, opener, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List disputes
// @Description All disputes of an order, oldest first. Parties and admins only.
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {array} resdto.DisputeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/disputes [get]
func (h *DisputeHandler) List(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	views, err := h.q.ListDisputes(c.Request.Context(), orderID, v)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisputeViews(views))
}

// @Summary Resolve dispute
// @Description Settle the disputed order (admin only)
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param request body reqdto.ResolveDisputeRequest true "Resolution"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /disputes/{id}/resolve [post]
func (h *DisputeHandler) Resolve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resolver, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.ResolveDisputeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.ResolveDispute(c.Request.Context(), id, resolver, req.ToCommand()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
