package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/clock"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/config"

	"go.uber.org/zap"
)

// Client talks to the Retell conversational-voice API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	agentID    string
	baseURL    string
	clock      clock.Clock
	logger     *zap.Logger
}

func NewClient(cfg config.RetellConfig, clk clock.Clock, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     cfg.APIKey,
		agentID:    cfg.AgentID,
		baseURL:    cfg.BaseURL,
		clock:      clk,
		logger:     logger,
	}
}

// CallContext carries the session identifiers the front-end supplies when a
// customer starts a voice call.
type CallContext struct {
	RestaurantID string
	SessionID    string
}

type WebCall struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
	AgentID     string `json:"agent_id"`
}

// VendorError carries the vendor's response body through to the API caller so
// call-creation failures stay debuggable.
type VendorError struct {
	StatusCode int
	Details    string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("retell api returned status %d: %s", e.StatusCode, e.Details)
}

type createWebCallPayload struct {
	AgentID          string            `json:"agent_id"`
	Metadata         callMetadata      `json:"metadata"`
	DynamicVariables map[string]string `json:"retell_llm_dynamic_variables"`
}

type callMetadata struct {
	RestaurantID string `json:"restaurantId"`
	SessionID    string `json:"sessionId"`
	Timestamp    string `json:"timestamp"`
}

// CreateWebCall registers a web call with the vendor and returns the access
// token the browser SDK needs to join it.
func (c *Client) CreateWebCall(ctx context.Context, callCtx CallContext) (*WebCall, error) {
	now := c.clock.Now()

	payload := createWebCallPayload{
		AgentID: c.agentID,
		Metadata: callMetadata{
			RestaurantID: callCtx.RestaurantID,
			SessionID:    callCtx.SessionID,
			Timestamp:    now.Format(time.RFC3339),
		},
		DynamicVariables: map[string]string{
			"restaurant_name": "Big Bite Kebabs",
			"location":        "Crossroads Homemaker Centre, Casula NSW",
			"current_time":    now.Format("3:04:05 PM"),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling create-web-call payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-web-call", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building create-web-call request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling retell api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading retell response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &VendorError{StatusCode: resp.StatusCode, Details: string(respBody)}
	}

	var call WebCall
	if err := json.Unmarshal(respBody, &call); err != nil {
		return nil, fmt.Errorf("decoding retell response: %w", err)
	}

	c.logger.Info("web call created", zap.String("callId", call.CallID))
	return &call, nil
}
