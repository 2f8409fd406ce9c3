//go:build unit

package paymentgw_test

import (
	"context"
	"strings"
	"testing"

	"marketplace-core/internal/infra/paymentgw"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineGateway_CreateIntent(t *testing.T) {
	gw := paymentgw.NewOfflineGateway("stripe")
	req := shared.PaymentIntentRequest{OrderID: uuid.New(), AmountCents: 26_250, Currency: "EUR"}

	first, err := gw.CreateIntent(context.Background(), req)
	require.NoError(t, err)
	second, err := gw.CreateIntent(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "stripe", gw.Provider())
	require.NotNil(t, first.PaymentIntentID)
	assert.True(t, strings.HasPrefix(*first.PaymentIntentID, "pi_"))
	assert.NotEqual(t, *first.PaymentIntentID, *second.PaymentIntentID, "each attempt gets a fresh intent")
	assert.Nil(t, first.ChargeID)
}

func TestOfflineGateway_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := paymentgw.NewOfflineGateway("stripe").CreateIntent(ctx, shared.PaymentIntentRequest{OrderID: uuid.New()})

	assert.ErrorIs(t, err, context.Canceled)
}
