package web

import (
	"net/http"
	"sync"
	"time"

	"alanya-store/internal/cart"
	"alanya-store/internal/checkout"
	"alanya-store/internal/order"

	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// session bundles the per-browser state: one cart store and the two checkout
// dialog flows. Only one dialog is open at a time in the UI, so the flows
// share no coordination beyond the store itself.
type session struct {
	cart     *cart.Store
	itemFlow *checkout.ItemFlow
	cartFlow *checkout.CartFlow
}

type sessions struct {
	mu sync.RWMutex
	m  map[string]*session

	submitter  order.Submitter
	closeDelay time.Duration
}

func newSessions(submitter order.Submitter, closeDelay time.Duration) *sessions {
	return &sessions{
		m:          make(map[string]*session),
		submitter:  submitter,
		closeDelay: closeDelay,
	}
}

func (s *sessions) getOrCreate(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		store := cart.NewStore()
		sess = &session{
			cart:     store,
			itemFlow: checkout.NewItemFlow(s.submitter, s.closeDelay),
			cartFlow: checkout.NewCartFlow(store, s.submitter, s.closeDelay),
		}
		s.m[id] = sess
	}
	return sess
}

type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, sess *session)

// withSession resolves the browsing session from the cookie, minting a new
// ID when none is present.
func (s *Server) withSession(next sessionHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			id = c.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}
		next(w, r, s.sessions.getOrCreate(id))
	}
}
