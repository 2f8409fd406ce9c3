package api

import (
	"net/http"

	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/handler/middleware"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("request is not authenticated")

// pathID parses a uuid path parameter, aborting with 400 when malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// actorID returns the authenticated caller, aborting with 401 when absent.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}

func viewer(c *gin.Context) (queries.Viewer, bool) {
	id, ok := actorID(c)
	if !ok {
		return queries.Viewer{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return queries.Viewer{UserID: id, Role: role}, true
}

// optionalViewer is nil for anonymous callers.
func optionalViewer(c *gin.Context) *queries.Viewer {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return nil
	}
	role, _ := middleware.GetUserRole(c)
	return &queries.Viewer{UserID: id, Role: role}
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
