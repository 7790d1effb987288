package gateway

import (
	"context"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"

	"go.uber.org/zap"
)

// LogGateway is the default submission gateway: it records the handoff and
// does nothing else. Used until a real downstream integration is configured.
type LogGateway struct {
	logger *zap.Logger
}

func NewLogGateway(logger *zap.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) Submit(ctx context.Context, order domain.Order) error {
	g.logger.Info("order handed to external system (noop)",
		zap.String("orderId", order.OrderID),
		zap.Float64("total", order.Total),
	)
	return nil
}
