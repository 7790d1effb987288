package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	apperrors "github.com/benjoezac-cmd/big-bite-kebabs/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderService is the controller's view of the order lifecycle.
type OrderService interface {
	Submit(ctx context.Context, req SubmitOrderRequest) (domain.Order, error)
	CreateManual(ctx context.Context, req CreateOrderRequest) (domain.Order, error)
	Get(orderID string) (domain.Order, error)
	List(filter ListFilter) ([]domain.Order, int)
	UpdateStatus(orderID, status string) (domain.Order, error)
}

type Controller struct {
	service OrderService
	logger  *zap.Logger
}

func NewController(service OrderService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

// HandleCalculateTotal backs the agent's calculate-total function call. The
// agent supplies already-priced lines; nothing is persisted.
func (c *Controller) HandleCalculateTotal(w http.ResponseWriter, r *http.Request) {
	var req calculateTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Items == nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid items array",
		})
		return
	}

	total, itemCount := CalculateTotal(*req.Items)

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"total":     strconv.FormatFloat(total, 'f', 2, 64),
		"itemCount": itemCount,
	})
}

func (c *Controller) HandleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid JSON body",
		})
		return
	}

	order, err := c.service.Submit(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"orderId":        order.OrderID,
		"estimatedReady": order.EstimatedReady,
		"message":        fmt.Sprintf("Order confirmed! Your order %s will be ready in 15-20 minutes.", order.OrderID),
	})
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{
		Status:        r.URL.Query().Get("status"),
		CustomerPhone: r.URL.Query().Get("customerPhone"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "limit must be an integer",
			})
			return
		}
		filter.Limit = limit
	}

	orders, total := c.service.List(filter)

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
		"total":   total,
	})
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := c.service.Get(orderID)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid JSON body",
		})
		return
	}

	order, err := c.service.CreateManual(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "status is required",
		})
		return
	}

	order, err := c.service.UpdateStatus(orderID, req.Status)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   ve.Message,
		})
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   nf.Message,
		})
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"error":   "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
