package server

import (
	"encoding/json"
	"net/http"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/menu"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/order"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/retell"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(
	retellCtrl *retell.Controller,
	orderCtrl *order.Controller,
	menuCtrl *menu.Controller,
	health *HealthController,
	allowedOrigin string,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(
		RequestLogger(logger),
		CORS(allowedOrigin),
	)

	r.Get("/", handleIndex)
	r.Get("/health", health.Handle)

	r.Route("/api", func(r chi.Router) {
		r.Route("/retell", func(r chi.Router) {
			r.Post("/start-call", retellCtrl.HandleStartCall)
			r.Post("/webhook", retellCtrl.HandleWebhook)
		})

		r.Route("/functions", func(r chi.Router) {
			r.Post("/calculate-total", orderCtrl.HandleCalculateTotal)
			r.Post("/validate-menu-item", menuCtrl.HandleValidateMenuItem)
			r.Post("/submit-order", orderCtrl.HandleSubmitOrder)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.HandleListOrders)
			r.Post("/create", orderCtrl.HandleCreateOrder)
			r.Get("/{orderId}", orderCtrl.HandleGetOrder)
			r.Patch("/{orderId}/status", orderCtrl.HandleUpdateStatus)
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuCtrl.HandleGetMenu)
			r.Get("/{itemId}", menuCtrl.HandleGetMenuItem)
		})
	})

	return r
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"name":    "Big Bite Kebabs API",
		"version": "1.0.0",
		"endpoints": map[string][]string{
			"retell": {
				"POST /api/retell/start-call",
				"POST /api/retell/webhook",
			},
			"functions": {
				"POST /api/functions/calculate-total",
				"POST /api/functions/validate-menu-item",
				"POST /api/functions/submit-order",
			},
			"orders": {
				"GET /api/orders",
				"GET /api/orders/{orderId}",
				"POST /api/orders/create",
				"PATCH /api/orders/{orderId}/status",
			},
			"menu": {
				"GET /api/menu",
				"GET /api/menu/{itemId}",
			},
		},
	})
}
