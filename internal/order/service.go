package order

import (
	"context"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/clock"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"

	"go.uber.org/zap"
)

// SubmissionGateway forwards a persisted order to downstream systems (POS,
// delivery aggregator, SMS). Best-effort: the service logs failures and never
// lets them reach the caller that triggered the submission.
type SubmissionGateway interface {
	Submit(ctx context.Context, order domain.Order) error
}

type Service struct {
	builder *Builder
	store   *Store
	gateway SubmissionGateway
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(builder *Builder, store *Store, gateway SubmissionGateway, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{
		builder: builder,
		store:   store,
		gateway: gateway,
		clock:   clk,
		logger:  logger,
	}
}

// Place validates, builds and persists one order. When notify is set the
// submission gateway is invoked after the order is saved.
func (s *Service) Place(ctx context.Context, in BuildInput, notify bool) (domain.Order, error) {
	order, err := s.builder.Build(in)
	if err != nil {
		return domain.Order{}, err
	}

	s.store.Append(order)
	s.logger.Info("order saved",
		zap.String("orderId", order.OrderID),
		zap.String("status", order.Status),
		zap.String("source", order.Source),
		zap.Float64("total", order.Total),
	)

	if notify {
		if err := s.gateway.Submit(ctx, order); err != nil {
			s.logger.Error("submitting order to external system failed",
				zap.String("orderId", order.OrderID),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// Submit handles the voice agent's submit-order function call: the order is
// confirmed immediately and forwarded downstream.
func (s *Service) Submit(ctx context.Context, req SubmitOrderRequest) (domain.Order, error) {
	return s.Place(ctx, BuildInput{
		Items:               req.Items,
		OrderType:           req.OrderType,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		SpecialInstructions: req.SpecialInstructions,
		Source:              domain.OrderSourceVoice,
		Confirmed:           true,
	}, true)
}

// CreateManual handles non-voice order creation. The order stays pending
// until staff confirm it, and nothing is forwarded downstream yet.
func (s *Service) CreateManual(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	return s.Place(ctx, BuildInput{
		Items:               req.Items,
		OrderType:           req.OrderType,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		SpecialInstructions: req.SpecialInstructions,
		Source:              domain.OrderSourceWeb,
		Confirmed:           false,
	}, false)
}

func (s *Service) Get(orderID string) (domain.Order, error) {
	return s.store.Find(orderID)
}

func (s *Service) List(filter ListFilter) ([]domain.Order, int) {
	return s.store.List(filter)
}

func (s *Service) UpdateStatus(orderID, status string) (domain.Order, error) {
	return s.store.UpdateStatus(orderID, status, s.clock.Now())
}
