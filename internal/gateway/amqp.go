package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/infrastructure/rabbitmq"

	"go.uber.org/zap"
)

// AMQPGateway publishes submitted orders to a topic exchange for downstream
// consumers (POS, kitchen display, delivery aggregator bridge).
type AMQPGateway struct {
	conn       *rabbitmq.Connection
	exchange   string
	routingKey string
	logger     *zap.Logger
}

func NewAMQPGateway(conn *rabbitmq.Connection, exchange, routingKey string, logger *zap.Logger) (*AMQPGateway, error) {
	if err := conn.DeclareExchange(exchange); err != nil {
		return nil, fmt.Errorf("declaring exchange %s: %w", exchange, err)
	}

	return &AMQPGateway{
		conn:       conn,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

func (g *AMQPGateway) Submit(ctx context.Context, order domain.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshaling order %s: %w", order.OrderID, err)
	}

	if err := g.conn.Publish(ctx, g.exchange, g.routingKey, body); err != nil {
		return fmt.Errorf("publishing order %s: %w", order.OrderID, err)
	}

	g.logger.Info("order published",
		zap.String("orderId", order.OrderID),
		zap.String("exchange", g.exchange),
		zap.String("routingKey", g.routingKey),
	)
	return nil
}
