package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"alanya-store/internal/order"
)

// handleOrderIntake is the endpoint the checkout dialogs POST to. It accepts
// the order payload and forwards it to the shop's Telegram chat, mirroring
// the hosted function the storefront originally targeted. CORS is wide open
// so the page can call it from any origin.
func (s *Server) handleOrderIntake(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusOK)
	case http.MethodPost:
		if s.notifier == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Telegram credentials not configured"})
			return
		}

		var payload order.Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}

		if err := s.notifier.SendOrder(r.Context(), payload); err != nil {
			slog.Error("Failed to forward order", "error", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to send order"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Order sent to Telegram",
		})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	}
}
