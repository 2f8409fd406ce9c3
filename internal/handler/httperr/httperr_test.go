//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"invalid transition", errs.InvalidTransition("order is completed"), http.StatusConflict, "order is completed"},
		{"concurrency conflict", errs.Conflict("listing is already reserved"), http.StatusConflict, "listing is already reserved"},
		{"denied", errs.Denied("only the buyer"), http.StatusForbidden, "only the buyer"},
		{"not found", errs.NotFound("order not found"), http.StatusNotFound, "order not found"},
		{"validation", errs.Validation("rating must be between 1 and 5"), http.StatusBadRequest, "rating must be between 1 and 5"},
		{"wrapped domain error keeps its category", errs.Wrap(errs.Denied("nope"), "submit review"), http.StatusForbidden, "submit review: nope"},
		{"repository not found hides driver text", infra.WrapRepoErr("failed to find order", errors.New("no rows in result set"), infra.KindNotFound), http.StatusNotFound, "Resource not found"},
		{"repository lock conflict", infra.WrapRepoErr("failed to lock", nil, infra.KindLockConflict), http.StatusConflict, "Request conflicts with a concurrent change"},
		{"unclassified", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := httperr.StatusFor(tc.err)
			assert.Equal(t, tc.expectCode, code)
			assert.Equal(t, tc.expectMsg, msg)
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, map[string]any) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		httperr.AbortWithDomainError(c, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	t.Run("conflict carries the current state", func(t *testing.T) {
		rec, body := run(errs.WithState(errs.InvalidTransition("cannot ship"), "order", "o-1", "dispute"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, map[string]any{"entity": "order", "id": "o-1", "state": "dispute"}, body["detail"])
		assert.Equal(t, "cannot ship", body["error"].(map[string]any)["message"])
	})

	t.Run("non-conflict omits detail", func(t *testing.T) {
		rec, body := run(errs.WithState(errs.Denied("only the seller"), "listing", "l-1", "published"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NotContains(t, body, "detail")
	})

	t.Run("conflict without state omits detail", func(t *testing.T) {
		_, body := run(errs.Conflict("listing is held"))
		assert.NotContains(t, body, "detail")
	})
}
