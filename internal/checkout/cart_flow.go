package checkout

import (
	"context"
	"sync"
	"time"

	"alanya-store/internal/cart"
	"alanya-store/internal/order"
)

// CartFlow is the dialog state machine for checking out the whole cart.
// Quantity edits go straight to the cart store; the flow only owns the
// contact form and the submission status. A successful submission is the one
// place where a remote acknowledgment clears the store.
type CartFlow struct {
	mu         sync.Mutex
	form       order.ContactForm
	status     Status
	submitting bool
	open       bool
	closeTimer *time.Timer

	store      *cart.Store
	submitter  order.Submitter
	closeDelay time.Duration
}

func NewCartFlow(store *cart.Store, submitter order.Submitter, closeDelay time.Duration) *CartFlow {
	return &CartFlow{
		store:      store,
		submitter:  submitter,
		closeDelay: closeDelay,
	}
}

// Open starts a fresh dialog cycle with a blank contact form.
func (f *CartFlow) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopCloseTimer()
	f.form = order.ContactForm{}
	f.status = StatusIdle
	f.open = true
}

func (f *CartFlow) UpdateForm(form order.ContactForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = form
}

// Submit sends the whole cart as one order. An empty cart never issues a
// network call. On success the form is reset, the store is cleared and the
// dialog closes after the configured delay; on failure both the store and
// the form are left untouched so the user can retry right away.
func (f *CartFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	lines := f.store.Lines()
	if len(lines) == 0 {
		f.mu.Unlock()
		return nil
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.submitting = true
	f.status = StatusIdle
	payload := order.CartPayload(lines, f.form)
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.status = StatusError
		return err
	}
	f.status = StatusSuccess
	f.form = order.ContactForm{}
	f.store.Clear()
	f.closeTimer = time.AfterFunc(f.closeDelay, f.Close)
	return nil
}

// Close dismisses the dialog and cancels any scheduled auto-close.
func (f *CartFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopCloseTimer()
	f.form = order.ContactForm{}
	f.status = StatusIdle
	f.open = false
}

func (f *CartFlow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return StatusSubmitting
	}
	return f.status
}

func (f *CartFlow) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *CartFlow) Form() order.ContactForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

func (f *CartFlow) stopCloseTimer() {
	if f.closeTimer != nil {
		f.closeTimer.Stop()
		f.closeTimer = nil
	}
}
