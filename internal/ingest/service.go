package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/order"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/retell"

	"go.uber.org/zap"
)

// OrderPlacer persists an extracted order. Implemented by order.Service.
type OrderPlacer interface {
	Place(ctx context.Context, in order.BuildInput, notify bool) (domain.Order, error)
}

// Service classifies vendor webhook events and turns order-bearing ones into
// persisted orders. Extraction failures are logged and swallowed here so the
// webhook endpoint can acknowledge receipt unconditionally.
type Service struct {
	orders OrderPlacer
	logger *zap.Logger
}

func NewService(orders OrderPlacer, logger *zap.Logger) *Service {
	return &Service{
		orders: orders,
		logger: logger,
	}
}

func (s *Service) HandleEvent(ctx context.Context, event retell.Event) {
	logger := s.logger.With(
		zap.String("event", event.Kind),
		zap.String("callId", event.CallID()),
	)

	switch event.Kind {
	case retell.EventCallStarted:
		logger.Info("call started")

	case retell.EventCallEnded:
		if event.Call == nil || event.Call.Transcript == "" {
			logger.Info("call ended without transcript")
			return
		}
		if event.Call.CustomAnalysisData == "" {
			logger.Info("call ended without order data")
			return
		}
		ord, err := s.orderFromEndedCall(ctx, event.Call)
		if err != nil {
			logger.Warn("discarding order from ended call", zap.Error(err))
			return
		}
		logger.Info("order extracted from ended call", zap.String("orderId", ord.OrderID))

	case retell.EventCallAnalyzed:
		if event.Data == nil || event.Data.Analysis == nil {
			logger.Info("call analyzed without analysis payload")
			return
		}
		analysis := event.Data.Analysis
		if analysis.Intent != retell.IntentPlaceOrder || analysis.Entities == nil {
			logger.Info("analysis carries no order", zap.String("intent", analysis.Intent))
			return
		}
		ord, err := s.orderFromAnalysis(ctx, event.CallID(), analysis.Entities)
		if err != nil {
			logger.Warn("discarding order from analysis", zap.Error(err))
			return
		}
		logger.Info("order confirmed from analysis", zap.String("orderId", ord.OrderID))

	case retell.EventCallRecordingCompleted:
		url := ""
		if event.Data != nil {
			url = event.Data.RecordingURL
		}
		logger.Info("recording completed", zap.String("recordingUrl", url))

	default:
		logger.Info("unrecognized webhook event")
	}
}

// orderFromEndedCall decodes the agent's structured post-call payload. These
// orders land as pending for staff review and are forwarded downstream.
func (s *Service) orderFromEndedCall(ctx context.Context, call *retell.Call) (domain.Order, error) {
	var payload retell.OrderPayload
	if err := json.Unmarshal([]byte(call.CustomAnalysisData), &payload); err != nil {
		return domain.Order{}, fmt.Errorf("decoding custom_analysis_data: %w", err)
	}

	customerName := payload.CustomerName
	if customerName == "" {
		customerName = "Unknown"
	}

	return s.orders.Place(ctx, order.BuildInput{
		Items:           convertItems(payload.Items),
		OrderType:       payload.OrderType,
		CustomerName:    customerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerAddress: payload.CustomerAddress,
		CallID:          call.CallID,
		Source:          domain.OrderSourceVoice,
		Confirmed:       false,
	}, true)
}

// orderFromAnalysis builds a confirmed order from extracted entities. The
// confirmation path requires customer contact, so incomplete entities fail
// the build rather than producing an anonymous confirmed order.
func (s *Service) orderFromAnalysis(ctx context.Context, callID string, entities *retell.Entities) (domain.Order, error) {
	in := order.BuildInput{
		Items:     convertItems(entities.Items),
		OrderType: entities.OrderType,
		CallID:    callID,
		Source:    domain.OrderSourceVoice,
		Confirmed: true,
	}
	if info := entities.CustomerInfo; info != nil {
		in.CustomerName = info.Name
		in.CustomerPhone = info.Phone
		in.CustomerAddress = info.Address
	}

	return s.orders.Place(ctx, in, false)
}

func convertItems(items []retell.EntityItem) []order.LineItemInput {
	lines := make([]order.LineItemInput, len(items))
	for i, item := range items {
		lines[i] = order.LineItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return lines
}
