package order

import (
	"context"
	"errors"
	"testing"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/clock"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	apperrors "github.com/benjoezac-cmd/big-bite-kebabs/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGateway struct {
	SubmitFunc func(ctx context.Context, order domain.Order) error
	submitted  []domain.Order
}

func (m *mockGateway) Submit(ctx context.Context, order domain.Order) error {
	m.submitted = append(m.submitted, order)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, order)
	}
	return nil
}

func newTestService(gw SubmissionGateway) (*Service, *Store) {
	store := NewStore()
	clk := clock.NewFixed(testNow)
	builder := newTestBuilder()
	return NewService(builder, store, gw, clk, zap.NewNop()), store
}

func TestService_Submit_PersistsAndNotifiesGateway(t *testing.T) {
	gw := &mockGateway{}
	service, store := newTestService(gw)

	order, err := service.Submit(context.Background(), SubmitOrderRequest{
		Items: []LineItemInput{
			{ItemRef: "Mix Kebab Roll", Quantity: 2},
			{ItemRef: "Chips", Quantity: 1},
		},
		CustomerName:  "John",
		CustomerPhone: "0412345678",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, 48.00, order.Total)
	assert.Equal(t, domain.OrderSourceVoice, order.Source)

	persisted, err := store.Find(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order, persisted)

	require.Len(t, gw.submitted, 1)
	assert.Equal(t, order.OrderID, gw.submitted[0].OrderID)
}

func TestService_Submit_ValidationFailureDoesNotPersist(t *testing.T) {
	gw := &mockGateway{}
	service, store := newTestService(gw)

	_, err := service.Submit(context.Background(), SubmitOrderRequest{
		CustomerName:  "John",
		CustomerPhone: "0412345678",
	})
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeMissingItems, ve.Code)

	_, total := store.List(ListFilter{})
	assert.Equal(t, 0, total)
	assert.Empty(t, gw.submitted)
}

func TestService_Submit_GatewayFailureIsSwallowed(t *testing.T) {
	gw := &mockGateway{
		SubmitFunc: func(ctx context.Context, order domain.Order) error {
			return errors.New("pos unreachable")
		},
	}
	service, store := newTestService(gw)

	order, err := service.Submit(context.Background(), SubmitOrderRequest{
		Items:         []LineItemInput{{ItemRef: "chips", Quantity: 1}},
		CustomerName:  "Jane",
		CustomerPhone: "0400000000",
	})
	require.NoError(t, err)

	_, findErr := store.Find(order.OrderID)
	assert.NoError(t, findErr)
}

func TestService_CreateManual_PendingWithoutNotify(t *testing.T) {
	gw := &mockGateway{}
	service, _ := newTestService(gw)

	order, err := service.CreateManual(context.Background(), CreateOrderRequest{
		Items: []LineItemInput{{ItemRef: "chips", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.OrderSourceWeb, order.Source)
	assert.Nil(t, order.EstimatedReady)
	assert.Empty(t, gw.submitted)
}

func TestService_UpdateStatus_StampsUpdatedAt(t *testing.T) {
	gw := &mockGateway{}
	service, _ := newTestService(gw)

	order, err := service.CreateManual(context.Background(), CreateOrderRequest{
		Items: []LineItemInput{{ItemRef: "chips", Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := service.UpdateStatus(order.OrderID, domain.OrderStatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, testNow, *updated.UpdatedAt)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	gw := &mockGateway{}
	service, _ := newTestService(gw)

	_, err := service.UpdateStatus("BBK-missing", domain.OrderStatusReady)
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
