package retell

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebCallCreator registers a voice session with the vendor.
type WebCallCreator interface {
	CreateWebCall(ctx context.Context, callCtx CallContext) (*WebCall, error)
}

// EventHandler consumes a decoded webhook event. Implementations must absorb
// processing failures: by the time they run, receipt has to be acknowledged
// no matter what, or the vendor's retry policy floods us with redeliveries.
type EventHandler interface {
	HandleEvent(ctx context.Context, event Event)
}

type Controller struct {
	client WebCallCreator
	ingest EventHandler
	logger *zap.Logger
}

func NewController(client WebCallCreator, ingest EventHandler, logger *zap.Logger) *Controller {
	return &Controller{
		client: client,
		ingest: ingest,
		logger: logger,
	}
}

type startCallRequest struct {
	RestaurantID string `json:"restaurantId"`
	SessionID    string `json:"sessionId"`
}

func (c *Controller) HandleStartCall(w http.ResponseWriter, r *http.Request) {
	var req startCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid JSON body",
		})
		return
	}

	if req.RestaurantID == "" {
		req.RestaurantID = "big-bite-kebabs"
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	call, err := c.client.CreateWebCall(r.Context(), CallContext{
		RestaurantID: req.RestaurantID,
		SessionID:    req.SessionID,
	})
	if err != nil {
		c.logger.Error("creating web call failed", zap.Error(err))
		details := err.Error()
		if ve, ok := err.(*VendorError); ok {
			details = ve.Details
		}
		c.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to start call",
			"details": details,
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"accessToken": call.AccessToken,
		"callId":      call.CallID,
		"agentId":     call.AgentID,
	})
}

// HandleWebhook acknowledges every decodable event with 200 {received:true}.
// Processing outcomes never change the response; only an undecodable body is
// reported back as a failure.
func (c *Controller) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		c.logger.Error("undecodable webhook body", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "Webhook processing failed",
		})
		return
	}

	c.logger.Info("webhook received",
		zap.String("event", event.Kind),
		zap.String("callId", event.CallID()),
	)

	c.ingest.HandleEvent(r.Context(), event)

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"received": true,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
