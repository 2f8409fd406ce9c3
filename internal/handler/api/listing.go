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

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description Create a draft listing owned by the caller
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	sellerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateListing(c.Request.Context(), sellerID, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/listings/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Get listing
// @Description Get a listing with its derived availability. Hidden listings are visible to the owner and moderators only.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, id, optionalViewer(c))
}

// @Summary Edit listing
// @Description Partially update a draft or rejected listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.EditListingRequest true "Edit listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id} [patch]
func (h *ListingHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	var req reqdto.EditListingRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.IsEmpty() {
		h.render(c, id, &v)
		return
	}
	h.act(c, id, v, func(ctx context.Context) error {
		return h.cmds.EditListing(ctx, id, v.UserID, req.ToCommand())
	})
}

// @Summary Submit listing
// @Description Send a draft or rejected listing to moderation
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/submit [post]
func (h *ListingHandler) Submit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	h.act(c, id, v, func(ctx context.Context) error {
		return h.cmds.SubmitListing(ctx, id, v.UserID)
	})
}

// @Summary Moderate listing
// @Description Approve, reject or unpublish a listing (moderator only)
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.ModerateListingRequest true "Moderation decision"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/moderation [post]
func (h *ListingHandler) Moderate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	var req reqdto.ModerateListingRequest
	if !bindJSON(c, &req) {
		return
	}
	h.act(c, id, v, func(ctx context.Context) error {
		return h.cmds.ModerateListing(ctx, id, v.UserID, req.ToCommand())
	})
}

// @Summary Archive listing
// @Description Withdraw a listing. Rejected while an order is in flight.
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/archive [post]
func (h *ListingHandler) Archive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, ok := viewer(c)
	if !ok {
		return
	}
	h.act(c, id, v, func(ctx context.Context) error {
		return h.cmds.ArchiveListing(ctx, id, v.UserID)
	})
}

// act runs a listing command and answers with the refreshed listing.
func (h *ListingHandler) act(c *gin.Context, id uuid.UUID, v queries.Viewer, cmd func(ctx context.Context) error) {
	if err := cmd(c.Request.Context()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.render(c, id, &v)
}

func (h *ListingHandler) render(c *gin.Context, id uuid.UUID, v *queries.Viewer) {
	view, err := h.q.GetListing(c.Request.Context(), id, v)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}
