//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/middleware"
	"marketplace-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	tokens map[string]struct {
		id   uuid.UUID
		role user.Role
	}
}

func (v stubValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	if ident, ok := v.tokens[token]; ok {
		return ident.id, ident.role, nil
	}
	return uuid.Nil, "", errors.New("token is expired")
}

func setupAuthRouter(memberID, adminID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	v := stubValidator{tokens: map[string]struct {
		id   uuid.UUID
		role user.Role
	}{
		"member": {memberID, user.RoleMember},
		"admin":  {adminID, user.RoleAdmin},
	}}
	m := middleware.NewAuthMiddleware(v)

	whoami := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/private", m.RequireAuth(), whoami)
	r.GET("/public", m.OptionalAuth(), whoami)
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleModerator), whoami)
	r.GET("/misconfigured", m.RequireRoleAtLeast(user.RoleModerator), whoami)
	return r
}

func TestRequireAuth(t *testing.T) {
	memberID, adminID := uuid.New(), uuid.New()
	r := setupAuthRouter(memberID, adminID)

	tests := []struct {
		name       string
		path       string
		token      string
		expectCode int
		expectMsg  string
		expectUser string
	}{
		{name: "valid token sets identity", path: "/private", token: "member", expectCode: http.StatusOK, expectUser: memberID.String()},
		{name: "missing token", path: "/private", expectCode: http.StatusUnauthorized, expectMsg: "Access token required"},
		{name: "invalid token", path: "/private", token: "forged", expectCode: http.StatusUnauthorized, expectMsg: "Invalid or expired token"},
		{name: "optional auth without token", path: "/public", expectCode: http.StatusOK, expectUser: ""},
		{name: "optional auth ignores bad token", path: "/public", token: "forged", expectCode: http.StatusOK, expectUser: ""},
		{name: "optional auth with token", path: "/public", token: "admin", expectCode: http.StatusOK, expectUser: adminID.String()},
		{name: "member below moderator", path: "/admin", token: "member", expectCode: http.StatusForbidden, expectMsg: "Insufficient permissions"},
		{name: "admin satisfies moderator", path: "/admin", token: "admin", expectCode: http.StatusOK, expectUser: adminID.String()},
		{name: "role check without auth", path: "/misconfigured", token: "admin", expectCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, tc.path, nil, tc.token)
			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
				return
			}
			var body struct {
				UserID string `json:"user_id"`
			}
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tc.expectUser, body.UserID)
		})
	}
}
