package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds    commands.UserCommands
	q       queries.UserQueries
	reviews queries.ReviewQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries, reviews queries.ReviewQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q, reviews: reviews}
}

// @Summary Provision user
// @Description Mirror an identity created by the auth service, with empty reputation (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProvisionUserRequest true "Provision user request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Provision(c *gin.Context) {
	var req reqdto.ProvisionUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.cmds.ProvisionUser(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/users/"+u.ID().String())
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}

// @Summary User reputation
// @Description Per-side averages, transacted counts and negative counters of a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.ReputationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/reputation [get]
func (h *UserHandler) Reputation(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetReputation(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromReputationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List reviews about a user
// @Description Reviews targeting the user, newest first, keyset paginated
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReviewPageResponse
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/reviews [get]
func (h *UserHandler) Reviews(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.reviews.ListByTarget(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		slog.Warn("list reviews by target failed", "error", err, "target_id", userID)
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp := resdto.ReviewPageResponse{Reviews: resdto.FromReviewList(items)}
	if next != nil {
		resp.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, resp)
}
