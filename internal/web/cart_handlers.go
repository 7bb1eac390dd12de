package web

import (
	"encoding/json"
	"net/http"

	"alanya-store/internal/cart"
	"alanya-store/internal/catalog"
)

type cartLineResponse struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type cartResponse struct {
	Items      []cartLineResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice string             `json:"total_price"`
}

func cartView(store *cart.Store) cartResponse {
	lines := store.Lines()
	items := make([]cartLineResponse, len(lines))
	for i, line := range lines {
		items[i] = cartLineResponse{
			Name:     line.Item.Name,
			Slug:     line.Item.Slug,
			Price:    line.Item.Price,
			Image:    line.Item.Image,
			Quantity: line.Quantity,
			Subtotal: catalog.FormatPrice(catalog.ParsePrice(line.Item.Price) * line.Quantity),
		}
	}
	return cartResponse{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: catalog.FormatPrice(store.TotalPrice()),
	}
}

func (s *Server) handleCartView(w http.ResponseWriter, r *http.Request, sess *session) {
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request, sess *session) {
	var req struct {
		Item string `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	item, ok := catalog.ItemBySlug(req.Item)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown catalog item"})
		return
	}

	sess.cart.AddItem(item)
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request, sess *session) {
	item, ok := catalog.ItemBySlug(r.PathValue("slug"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown catalog item"})
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Quantity must be a number"})
		return
	}

	sess.cart.UpdateQuantity(item.Name, *req.Quantity)
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request, sess *session) {
	item, ok := catalog.ItemBySlug(r.PathValue("slug"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown catalog item"})
		return
	}

	sess.cart.RemoveItem(item.Name)
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}

func (s *Server) handleCartClear(w http.ResponseWriter, r *http.Request, sess *session) {
	sess.cart.Clear()
	writeJSON(w, http.StatusOK, cartView(sess.cart))
}
