package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"alanya-store/internal/catalog"
	"alanya-store/internal/checkout"
	"alanya-store/internal/order"
)

type checkoutRequest struct {
	Item string `json:"item"`
	order.ContactForm
}

type checkoutResponse struct {
	Status string `json:"status"`
}

// handleItemCheckout drives the single-item dialog through one submit cycle:
// open with the target item, fill the form, submit.
func (s *Server) handleItemCheckout(w http.ResponseWriter, r *http.Request, sess *session) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Phone == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name and phone are required"})
		return
	}

	item, ok := catalog.ItemBySlug(req.Item)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown catalog item"})
		return
	}

	sess.itemFlow.Open(item)
	sess.itemFlow.UpdateForm(req.ContactForm)

	respondSubmit(w, sess.itemFlow.Submit(r.Context()))
}

// handleCartCheckout drives the cart dialog through one submit cycle. An
// empty cart is rejected before any network call.
func (s *Server) handleCartCheckout(w http.ResponseWriter, r *http.Request, sess *session) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Phone == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name and phone are required"})
		return
	}
	if sess.cart.TotalItems() == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
		return
	}

	sess.cartFlow.Open()
	sess.cartFlow.UpdateForm(req.ContactForm)

	respondSubmit(w, sess.cartFlow.Submit(r.Context()))
}

func respondSubmit(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrSubmitInProgress):
		writeJSON(w, http.StatusConflict, checkoutResponse{Status: checkout.StatusSubmitting.String()})
	case err != nil:
		writeJSON(w, http.StatusBadGateway, checkoutResponse{Status: checkout.StatusError.String()})
	default:
		writeJSON(w, http.StatusOK, checkoutResponse{Status: checkout.StatusSuccess.String()})
	}
}

func (s *Server) handleItemCheckoutStatus(w http.ResponseWriter, r *http.Request, sess *session) {
	writeJSON(w, http.StatusOK, checkoutResponse{Status: sess.itemFlow.Status().String()})
}

func (s *Server) handleItemCheckoutClose(w http.ResponseWriter, r *http.Request, sess *session) {
	sess.itemFlow.Close()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCartCheckoutStatus(w http.ResponseWriter, r *http.Request, sess *session) {
	writeJSON(w, http.StatusOK, checkoutResponse{Status: sess.cartFlow.Status().String()})
}

func (s *Server) handleCartCheckoutClose(w http.ResponseWriter, r *http.Request, sess *session) {
	sess.cartFlow.Close()
	w.WriteHeader(http.StatusNoContent)
}
