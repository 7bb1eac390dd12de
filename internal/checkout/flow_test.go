package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"alanya-store/internal/cart"
	"alanya-store/internal/catalog"
	"alanya-store/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submitterFunc func(ctx context.Context, payload order.Payload) error

func (f submitterFunc) Submit(ctx context.Context, payload order.Payload) error {
	return f(ctx, payload)
}

var (
	errSubmit = errors.New("submission failed")

	testItem = catalog.Item{Name: "Шаровары с резинкой", Price: "3 200 ₽"}
	testForm = order.ContactForm{Name: "Иван", Phone: "+7 999 000 00 00"}
)

func okSubmitter(captured *order.Payload) submitterFunc {
	return func(ctx context.Context, payload order.Payload) error {
		if captured != nil {
			*captured = payload
		}
		return nil
	}
}

func failSubmitter() submitterFunc {
	return func(ctx context.Context, payload order.Payload) error {
		return errSubmit
	}
}

func TestItemFlowSubmitWithoutItemIsNoop(t *testing.T) {
	calls := 0
	f := NewItemFlow(submitterFunc(func(ctx context.Context, p order.Payload) error {
		calls++
		return nil
	}), time.Hour)

	require.NoError(t, f.Submit(context.Background()))
	assert.Zero(t, calls, "no target item must mean no network call")
	assert.Equal(t, StatusIdle, f.Status())
}

func TestItemFlowSuccess(t *testing.T) {
	var got order.Payload
	f := NewItemFlow(okSubmitter(&got), time.Hour)

	f.Open(testItem)
	f.UpdateForm(testForm)
	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, order.ContactForm{}, f.Form(), "form resets after success")
	require.Len(t, got.Items, 1)
	assert.Equal(t, order.LineItem{Name: "Шаровары с резинкой", Price: "3 200 ₽"}, got.Items[0])
	assert.Equal(t, "3 200 ₽", got.Total)
}

func TestItemFlowAutoClose(t *testing.T) {
	f := NewItemFlow(okSubmitter(nil), 10*time.Millisecond)

	f.Open(testItem)
	f.UpdateForm(testForm)
	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, f.IsOpen())

	assert.Eventually(t, func() bool {
		return !f.IsOpen() && f.Status() == StatusIdle
	}, time.Second, 5*time.Millisecond, "dialog must auto-close after the delay")
}

func TestItemFlowManualCloseCancelsAutoClose(t *testing.T) {
	f := NewItemFlow(okSubmitter(nil), 20*time.Millisecond)

	f.Open(testItem)
	f.UpdateForm(testForm)
	require.NoError(t, f.Submit(context.Background()))

	f.Close()
	f.Open(testItem)

	// The stale timer from the previous cycle must not fire against the
	// reopened dialog.
	time.Sleep(50 * time.Millisecond)
	assert.True(t, f.IsOpen())
}

func TestItemFlowFailureKeepsForm(t *testing.T) {
	f := NewItemFlow(failSubmitter(), time.Hour)

	f.Open(testItem)
	f.UpdateForm(testForm)
	err := f.Submit(context.Background())

	require.ErrorIs(t, err, errSubmit)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, testForm, f.Form(), "form stays populated for retry")
	assert.True(t, f.IsOpen())

	// immediate resubmission is allowed
	assert.ErrorIs(t, f.Submit(context.Background()), errSubmit)
}

func TestItemFlowRejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := NewItemFlow(submitterFunc(func(ctx context.Context, p order.Payload) error {
		close(started)
		<-release
		return nil
	}), time.Hour)

	f.Open(testItem)
	f.UpdateForm(testForm)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	<-started
	assert.Equal(t, StatusSubmitting, f.Status())
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusSuccess, f.Status())
}

func TestCartFlowEmptyCartNeverSubmits(t *testing.T) {
	calls := 0
	store := cart.NewStore()
	f := NewCartFlow(store, submitterFunc(func(ctx context.Context, p order.Payload) error {
		calls++
		return nil
	}), time.Hour)

	f.Open()
	f.UpdateForm(testForm)
	require.NoError(t, f.Submit(context.Background()))
	assert.Zero(t, calls)
}

func TestCartFlowSuccessClearsCart(t *testing.T) {
	store := cart.NewStore()
	store.AddItem(catalog.Item{Name: "Льняная рубашка", Price: "2 500 ₽"})
	store.AddItem(catalog.Item{Name: "Льняная рубашка", Price: "2 500 ₽"})
	store.AddItem(catalog.Item{Name: "Топ из хлопка", Price: "1 800 ₽"})

	var got order.Payload
	f := NewCartFlow(store, okSubmitter(&got), 10*time.Millisecond)

	f.Open()
	f.UpdateForm(testForm)
	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, order.ContactForm{}, f.Form())
	assert.Empty(t, store.Lines(), "successful checkout clears the cart")

	require.Len(t, got.Items, 2)
	assert.Equal(t, order.LineItem{Name: "Льняная рубашка x2", Price: "5000 ₽"}, got.Items[0])
	assert.Equal(t, order.LineItem{Name: "Топ из хлопка x1", Price: "1800 ₽"}, got.Items[1])
	assert.Equal(t, "6800 ₽", got.Total)

	assert.Eventually(t, func() bool {
		return !f.IsOpen()
	}, time.Second, 5*time.Millisecond)
}

func TestCartFlowFailureKeepsCartAndForm(t *testing.T) {
	store := cart.NewStore()
	store.AddItem(catalog.Item{Name: "Льняной шарф", Price: "1 200 ₽"})

	f := NewCartFlow(store, failSubmitter(), time.Hour)

	f.Open()
	f.UpdateForm(testForm)
	err := f.Submit(context.Background())

	require.ErrorIs(t, err, errSubmit)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, testForm, f.Form())
	assert.Len(t, store.Lines(), 1, "failed checkout leaves the cart untouched")

	// immediate resubmission is allowed
	assert.ErrorIs(t, f.Submit(context.Background()), errSubmit)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
