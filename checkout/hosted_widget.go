package checkout

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/rs/zerolog/log"
)

var _ Widget = (*HostedWidget)(nil)

// CallbackPath is where the browser reports an outcome for an order
func CallbackPath(orderID, outcome string) string {
	return "/checkout/" + url.PathEscape(orderID) + "/" + outcome
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Mount is what the browser script needs to construct the gateway widget
type Mount struct {
	ScriptURL  string  `json:"scriptUrl"`
	Options    Options `json:"options"`
	SuccessURL string  `json:"successUrl"`
	FailureURL string  `json:"failureUrl"`
}

type pendingOrder struct {
	owner     string
	onSuccess SuccessHandler
	onFailure FailureHandler
	openedAt  time.Time
}

// HostedWidget mounts the gateway script on the page and keeps the handlers of each opened
// order until the browser reports back or the order goes stale.
type HostedWidget struct {
	scriptURL string
	ttl       time.Duration
	now       func() time.Time

	lock    sync.RWMutex
	pending map[string]pendingOrder
}

func NewHostedWidget(scriptURL string, ttl time.Duration) *HostedWidget {
	return &HostedWidget{
		scriptURL: scriptURL,
		ttl:       ttl,
		now:       time.Now,
		pending:   make(map[string]pendingOrder),
	}
}

// WithClock overrides time.Now, for tests
func (w *HostedWidget) WithClock(now func() time.Time) *HostedWidget {
	w.now = now
	return w
}

func (w *HostedWidget) Open(page ui.Page, opts Options, onSuccess SuccessHandler, onFailure FailureHandler) error {
	if opts.OrderID == "" {
		return fmt.Errorf("[HostedWidget Open] %w: order id", werrors.ErrMissingField)
	}
	if opts.Owner == "" {
		return fmt.Errorf("[HostedWidget Open] %w: owner", werrors.ErrMissingField)
	}

	w.lock.Lock()
	w.evictLocked()
	w.pending[opts.OrderID] = pendingOrder{owner: opts.Owner, onSuccess: onSuccess, onFailure: onFailure, openedAt: w.now()}
	w.lock.Unlock()

	page.Mount(MountName, Mount{
		ScriptURL:  w.scriptURL,
		Options:    opts,
		SuccessURL: CallbackPath(opts.OrderID, OutcomeSuccess),
		FailureURL: CallbackPath(opts.OrderID, OutcomeFailure),
	})
	log.Info().Str("order_id", opts.OrderID).Int64("amount", opts.Amount).Msg("Checkout opened")
	return nil
}

// Succeed dispatches a success event reported by owner. The order is forgotten afterwards.
func (w *HostedWidget) Succeed(page ui.Page, orderID, owner string, payment Payment) error {
	w.lock.Lock()
	order, ok := w.lookupLocked(orderID, owner)
	if ok {
		delete(w.pending, orderID)
	}
	w.lock.Unlock()
	if !ok {
		return fmt.Errorf("[HostedWidget Succeed] %w: %s", werrors.ErrUnknownOrder, orderID)
	}

	log.Info().Str("order_id", orderID).Str("payment_id", payment.PaymentID).Msg("Checkout succeeded")
	if order.onSuccess != nil {
		order.onSuccess(page, payment)
	}
	return nil
}

// Fail dispatches a payment.failed event reported by owner. The order stays pending since the
// user may retry from the same checkout.
func (w *HostedWidget) Fail(page ui.Page, orderID, owner string, failure Failure) error {
	w.lock.Lock()
	order, ok := w.lookupLocked(orderID, owner)
	w.lock.Unlock()
	if !ok {
		return fmt.Errorf("[HostedWidget Fail] %w: %s", werrors.ErrUnknownOrder, orderID)
	}

	log.Warn().Str("order_id", orderID).Str("code", failure.Code).Str("reason", failure.Reason).Msg("Checkout payment failed")
	if order.onFailure != nil {
		order.onFailure(page, failure)
	}
	return nil
}

// Pending is the number of orders awaiting an outcome
func (w *HostedWidget) Pending() int {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return len(w.pending)
}

// lookupLocked treats an order opened by another session as unknown and leaves it pending
func (w *HostedWidget) lookupLocked(orderID, owner string) (pendingOrder, bool) {
	order, ok := w.pending[orderID]
	if !ok {
		return pendingOrder{}, false
	}
	if w.expired(order) {
		delete(w.pending, orderID)
		return pendingOrder{}, false
	}
	if order.owner != owner {
		log.Warn().Str("order_id", orderID).Msg("Checkout callback from a different session")
		return pendingOrder{}, false
	}
	return order, true
}

func (w *HostedWidget) evictLocked() {
	for id, order := range w.pending {
		if w.expired(order) {
			delete(w.pending, id)
		}
	}
}

func (w *HostedWidget) expired(order pendingOrder) bool {
	return w.ttl > 0 && w.now().Sub(order.openedAt) > w.ttl
}
