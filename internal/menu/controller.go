package menu

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	apperrors "github.com/benjoezac-cmd/big-bite-kebabs/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	catalog *Catalog
	logger  *zap.Logger
}

func NewController(catalog *Catalog, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

type menuResponse struct {
	Popular []domain.MenuItem `json:"popular"`
	Items   []domain.MenuItem `json:"items"`
}

func (c *Controller) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"menu": menuResponse{
			Popular: c.catalog.Popular(),
			Items:   c.catalog.Items(),
		},
	})
}

func (c *Controller) HandleGetMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	item, ok := c.catalog.Lookup(itemID)
	if !ok {
		c.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Item not found",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    item,
	})
}

type validateItemRequest struct {
	ItemName string `json:"itemName"`
}

// HandleValidateMenuItem backs the voice agent's validate-menu-item function
// call. An unknown item is not an error: the agent relays the message to the
// caller and keeps the conversation going.
func (c *Controller) HandleValidateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req validateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ItemName == "" {
		c.writeValidationError(w, "itemName is required", apperrors.ValidationDetail{
			Field:   "itemName",
			Message: "itemName must not be empty",
		})
		return
	}

	item, ok := c.catalog.Lookup(req.ItemName)
	if !ok {
		c.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"valid":   false,
			"message": fmt.Sprintf("Sorry, we don't have %q on our menu.", req.ItemName),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"valid":   true,
		"item":    item,
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
