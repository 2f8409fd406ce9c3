package httperr

import (
	stderrors "errors"
	"net/http"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StateDetail is the current state of the entity a rejected request targeted.
type StateDetail struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	State  string `json:"state"`
}

// AbortWithDomainError maps the error taxonomy onto HTTP statuses. Conflicts and invalid
// transitions carry the entity's current state as detail; unclassified errors become 500.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	var detail any
	if status == http.StatusConflict {
		if se, ok := errs.CurrentState(err); ok {
			detail = StateDetail{Entity: se.Entity, ID: se.ID, State: se.State}
		}
	}
	AbortWithError(c, status, err, msg, detail)
}

// StatusFor returns the HTTP status and public message for err.
func StatusFor(err error) (int, string) {
	switch errs.Category(err) {
	case errs.ErrInvalidTransition, errs.ErrConcurrencyConflict:
		return http.StatusConflict, publicMessage(err)
	case errs.ErrAuthorizationDenied:
		return http.StatusForbidden, publicMessage(err)
	case errs.ErrNotFound:
		return http.StatusNotFound, publicMessage(err)
	case errs.ErrValidation:
		return http.StatusBadRequest, publicMessage(err)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// publicMessage drops infra wrapping so only the domain message reaches the client.
func publicMessage(err error) string {
	if se, ok := errs.CurrentState(err); ok {
		err = se.Unwrap()
	}
	var repoErr infra.RepositoryError
	if stderrors.As(err, &repoErr) {
		switch repoErr.Kind {
		case infra.KindNotFound:
			return "Resource not found"
		default:
			return "Request conflicts with a concurrent change"
		}
	}
	return err.Error()
}
