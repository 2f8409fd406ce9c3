//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/api"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/tests/common/httptest"
	"marketplace-core/tests/common/testutil"
	commandsmock "marketplace-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	h := api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/payments/events", fakeAuth(uuid.New(), user.RoleAdmin), h.ApplyEvent)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestApplyEvent() {
	orderID := uuid.New()
	charge := "ch_42"
	reqBody := map[string]any{
		"provider":     "stripe",
		"event_id":     "evt_1",
		"order_id":     orderID.String(),
		"outcome":      "succeeded",
		"amount_cents": 26_889,
		"charge_id":    charge,
		"raw":          map[string]any{"type": "charge.succeeded"},
	}

	for _, applied := range []bool{true, false} {
		s.Run("success: reports whether the event was new", func() {
			s.mockCommands.EXPECT().
				ApplyPaymentEvent(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req commands.PaymentEventRequest) (bool, error) {
					s.Equal("evt_1", req.EventID)
					s.Equal(orderID, req.OrderID)
					s.Equal(payment.OutcomeSucceeded, req.Outcome)
					s.Require().NotNil(req.Refs.ChargeID)
					s.Equal(charge, *req.Refs.ChargeID)
					s.Nil(req.Refs.PaymentIntentID)
					s.JSONEq(`{"type":"charge.succeeded"}`, string(req.Raw))
					return applied, nil
				})

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/events", reqBody, token)

			var res resdto.PaymentEventResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.Equal(applied, res.Applied)
		})
	}

	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing event id", mutate: testutil.Field("event_id", nil)},
		{name: "unknown outcome", mutate: testutil.Field("outcome", "pending")},
		{name: "negative amount", mutate: testutil.Field("amount_cents", -1)},
	}
	for _, tc := range tests {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/events", testutil.DtoMap(s.T(), reqBody, tc.mutate), token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 409 for a failure after settlement", func() {
		s.mockCommands.EXPECT().ApplyPaymentEvent(gomock.Any(), gomock.Any()).
			Return(false, payment.ErrAlreadySettled)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("outcome", "failed"), testutil.Field("event_id", "evt_2"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/events", body, token)

		s.Equal(http.StatusConflict, rec.Code)
		var res map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Contains(res, "error")
		s.Contains(rec.Body.String(), "already succeeded")
	})
}
