//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/api"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/tests/common/httptest"
	commandsmock "marketplace-core/tests/mock/commands"
	queriesmock "marketplace-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DisputeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDisputeCommands
	mockQueries  *queriesmock.MockOrderQueries
	actorID      uuid.UUID
	orderID      uuid.UUID
}

func (s *DisputeHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDisputeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	h := api.NewDisputeHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.orderID = uuid.New()

	s.router.POST("/orders/:id/disputes", fakeAuth(s.actorID, user.RoleMember), h.Open)
	s.router.GET("/orders/:id/disputes", fakeAuth(s.actorID, user.RoleMember), h.List)
	s.router.POST("/disputes/:id/resolve", fakeAuth(s.actorID, user.RoleAdmin), h.Resolve)
}

func (s *DisputeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDisputeHandlerSuite(t *testing.T) {
	suite.Run(t, new(DisputeHandlerTestSuite))
}

func (s *DisputeHandlerTestSuite) TestOpen() {
	url := "/orders/" + s.orderID.String() + "/disputes"
	body := map[string]any{"reason": "not_as_described", "message": "Frame is cracked"}

	s.Run("success: 201 with the dispute id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			OpenDispute(gomock.Any(), s.orderID, s.actorID, commands.OpenDisputeRequest{
				Reason:  dispute.ReasonNotAsDescribed,
				Message: "Frame is cracked",
			}).
			Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)

		var res resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(id.String(), res.ID)
	})

	s.Run("error: 409 when one is already open", func() {
		s.mockCommands.EXPECT().OpenDispute(gomock.Any(), s.orderID, s.actorID, gomock.Any()).
			Return(uuid.Nil, errs.WithState(dispute.ErrAlreadyOpen, "order", s.orderID.String(), "dispute"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has an open dispute")
	})

	s.Run("error: 403 for a non-party", func() {
		s.mockCommands.EXPECT().OpenDispute(gomock.Any(), s.orderID, s.actorID, gomock.Any()).
			Return(uuid.Nil, dispute.ErrNotParty)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only a party")
	})

	s.Run("error: 400 on unknown reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "bored", "message": "x"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *DisputeHandlerTestSuite) TestList() {
	url := "/orders/" + s.orderID.String() + "/disputes"
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success: escalations have no opener", func() {
		s.mockQueries.EXPECT().
			ListDisputes(gomock.Any(), s.orderID, queries.Viewer{UserID: s.actorID, Role: user.RoleMember}).
			Return([]queries.DisputeView{{
				ID:        uuid.New(),
				OrderID:   s.orderID,
				Reason:    "no_show",
				Message:   "handover deadline lapsed",
				CreatedAt: created,
				UpdatedAt: created,
			}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var res []resdto.DisputeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Nil(res[0].OpenedBy)
		s.Equal("no_show", res[0].Reason)
		s.Equal(created.Unix(), res[0].CreatedAt)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().ListDisputes(gomock.Any(), s.orderID, gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *DisputeHandlerTestSuite) TestResolve() {
	disputeID := uuid.New()
	url := "/disputes/" + disputeID.String() + "/resolve"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().
			ResolveDispute(gomock.Any(), disputeID, s.actorID, commands.ResolveDisputeRequest{
				Outcome: dispute.OutcomeRefundBuyer,
				Note:    "seller agreed",
			}).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"outcome": "refund_buyer", "note": "seller agreed"}, token)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 409 with the dispute state on a second resolve", func() {
		s.mockCommands.EXPECT().ResolveDispute(gomock.Any(), disputeID, s.actorID, gomock.Any()).
			Return(errs.WithState(dispute.ErrAlreadyResolved, "dispute", disputeID.String(), "resolved"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"outcome": "release_to_seller"}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already resolved")
		s.Contains(rec.Body.String(), `"state":"resolved"`)
	})

	s.Run("error: 400 on unknown outcome", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"outcome": "split"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
