package api

import (
	"context"
	"net/http"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create an order for a published listing, or one reserved by the caller
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateOrder(c.Request.Context(), v.UserID, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/orders/"+id.String())
	h.render(c, http.StatusCreated, id, v)
}

// @Summary Get order
// @Description Get an order after applying lapsed deadlines. Parties and admins only.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id, v)
}

// @Summary Initiate payment
// @Description Create or refresh the provider payment intent for a created order (buyer only)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/payment [post]
func (h *OrderHandler) InitiatePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	p, err := h.cmds.InitiatePayment(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayment(p))
}

// @Summary Schedule meetup
// @Description Seller proposes the in-person handover time
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ScheduleMeetupRequest true "Meetup time"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/meetup [post]
func (h *OrderHandler) ScheduleMeetup(c *gin.Context) {
	var req reqdto.ScheduleMeetupRequest
	h.step(c, &req, func(ctx context.Context, id, actor uuid.UUID) error {
		return h.cmds.ScheduleMeetup(ctx, id, actor, req.MeetupAt)
	})
}

// @Summary Confirm handover
// @Description Seller confirms the in-person handover with the buyer's code
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ConfirmHandoverRequest true "Handover code"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/handover [post]
func (h *OrderHandler) ConfirmHandover(c *gin.Context) {
	var req reqdto.ConfirmHandoverRequest
	h.step(c, &req, func(ctx context.Context, id, actor uuid.UUID) error {
		return h.cmds.ConfirmHandover(ctx, id, actor, req.Code)
	})
}

// @Summary Mark label ready
// @Description Seller reports the shipping label is ready
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/label [post]
func (h *OrderHandler) MarkLabelReady(c *gin.Context) {
	h.step(c, nil, h.cmds.MarkLabelReady)
}

// @Summary Ship order
// @Description Seller hands the parcel to the carrier
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ShipRequest true "Tracking number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/ship [post]
func (h *OrderHandler) Ship(c *gin.Context) {
	var req reqdto.ShipRequest
	h.step(c, &req, func(ctx context.Context, id, actor uuid.UUID) error {
		return h.cmds.Ship(ctx, id, actor, req.TrackingNumber)
	})
}

// @Summary Mark delivered
// @Description Record carrier delivery and start the buyer confirmation grace period
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/deliver [post]
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	h.step(c, nil, h.cmds.MarkDelivered)
}

// @Summary Confirm receipt
// @Description Buyer confirms receipt and completes the order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/confirm [post]
func (h *OrderHandler) ConfirmReceipt(c *gin.Context) {
	h.step(c, nil, h.cmds.ConfirmReceipt)
}

// @Summary Cancel order
// @Description Cancel before fulfillment starts. Cancelling a closed order is a no-op.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CancelOrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	changed, err := h.cmds.CancelOrder(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelOrderResponse{Cancelled: changed})
}

// step binds the optional body, runs one fulfillment command and renders the order.
func (h *OrderHandler) step(c *gin.Context, req any, cmd func(ctx context.Context, orderID, actorID uuid.UUID) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	if req != nil && !bindJSON(c, req) {
		return
	}
	if err := cmd(c.Request.Context(), id, v.UserID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, http.StatusOK, id, v)
}

func (h *OrderHandler) render(c *gin.Context, status int, id uuid.UUID, v queries.Viewer) {
	view, err := h.q.GetOrder(c.Request.Context(), id, v)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
