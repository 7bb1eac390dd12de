package checkout

import (
	"context"
	"sync"
	"time"

	"alanya-store/internal/catalog"
	"alanya-store/internal/order"
)

// ItemFlow is the dialog state machine for ordering a single catalog item.
// It never touches the cart.
type ItemFlow struct {
	mu         sync.Mutex
	item       *catalog.Item
	form       order.ContactForm
	status     Status
	submitting bool
	open       bool
	closeTimer *time.Timer

	submitter  order.Submitter
	closeDelay time.Duration
}

func NewItemFlow(submitter order.Submitter, closeDelay time.Duration) *ItemFlow {
	return &ItemFlow{
		submitter:  submitter,
		closeDelay: closeDelay,
	}
}

// Open starts a fresh dialog cycle for the given item. The contact form
// always starts blank; a pending auto-close from a previous cycle is
// canceled so it cannot fire against the reopened dialog.
func (f *ItemFlow) Open(item catalog.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopCloseTimer()
	f.item = &item
	f.form = order.ContactForm{}
	f.status = StatusIdle
	f.open = true
}

func (f *ItemFlow) UpdateForm(form order.ContactForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = form
}

// Submit sends the single-item order. Without a target item it is a no-op.
// On success the form is reset and the dialog closes after the configured
// delay; on failure the form is left untouched for an immediate retry.
func (f *ItemFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.item == nil {
		f.mu.Unlock()
		return nil
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.submitting = true
	f.status = StatusIdle
	payload := order.SinglePayload(*f.item, f.form)
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
	f.closeTimer = time.AfterFunc(f.closeDelay, f.Close)
	return nil
}

// Close dismisses the dialog and cancels any scheduled auto-close.
func (f *ItemFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopCloseTimer()
	f.item = nil
	f.form = order.ContactForm{}
	f.status = StatusIdle
	f.open = false
}

func (f *ItemFlow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return StatusSubmitting
	}
	return f.status
}

func (f *ItemFlow) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *ItemFlow) Form() order.ContactForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

func (f *ItemFlow) stopCloseTimer() {
	if f.closeTimer != nil {
		f.closeTimer.Stop()
		f.closeTimer = nil
	}
}
