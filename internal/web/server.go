package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"alanya-store/internal/order"
	"alanya-store/internal/pkg/config"
	"alanya-store/internal/telegram"
)

type Server struct {
	sessions *sessions
	notifier telegram.Notifier
	httpSrv  *http.Server
}

func NewServer(cfg *config.Config, submitter order.Submitter, notifier telegram.Notifier) *Server {
	s := &Server{
		sessions: newSessions(submitter, cfg.Checkout.CloseDelay),
		notifier: notifier,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)

	mux.HandleFunc("GET /api/cart", s.withSession(s.handleCartView))
	mux.HandleFunc("POST /api/cart/items", s.withSession(s.handleCartAdd))
	mux.HandleFunc("PATCH /api/cart/items/{slug}", s.withSession(s.handleCartUpdate))
	mux.HandleFunc("DELETE /api/cart/items/{slug}", s.withSession(s.handleCartRemove))
	mux.HandleFunc("DELETE /api/cart", s.withSession(s.handleCartClear))

	mux.HandleFunc("GET /api/checkout/item", s.withSession(s.handleItemCheckoutStatus))
	mux.HandleFunc("POST /api/checkout/item", s.withSession(s.handleItemCheckout))
	mux.HandleFunc("DELETE /api/checkout/item", s.withSession(s.handleItemCheckoutClose))
	mux.HandleFunc("GET /api/checkout/cart", s.withSession(s.handleCartCheckoutStatus))
	mux.HandleFunc("POST /api/checkout/cart", s.withSession(s.handleCartCheckout))
	mux.HandleFunc("DELETE /api/checkout/cart", s.withSession(s.handleCartCheckoutClose))

	mux.HandleFunc("/orders", s.handleOrderIntake)

	s.httpSrv = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	return s
}

func (s *Server) Start(ctx context.Context) {
	go func() {
		slog.Info("Started HTTP server", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "error", err)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the routing table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
