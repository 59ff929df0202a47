package checkout_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/checkout"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/stretchr/testify/require"
)

const (
	scriptURL = "https://checkout.razorpay.com/v1/checkout.js"
	owner     = "user:7"
)

func testOptions(orderID string) checkout.Options {
	return checkout.Options{
		Key:         "rzp_test_key",
		Amount:      50000,
		Currency:    "INR",
		Name:        "PayFlow Wallet",
		Description: "Add money to wallet",
		OrderID:     orderID,
		Prefill:     checkout.Prefill{Email: "asha@example.com"},
		Theme:       checkout.Theme{Color: "#e91e63"},
		Owner:       owner,
	}
}

func TestHostedWidget_OpenMountsOptions(t *testing.T) {
	w := checkout.NewHostedWidget(scriptURL, time.Minute)
	page := ui.NewRecorder()

	require.NoError(t, w.Open(page, testOptions("order_1"), nil, nil))
	mounted, ok := page.Mounted(checkout.MountName)
	require.True(t, ok)
	require.Equal(t, checkout.Mount{
		ScriptURL:  scriptURL,
		Options:    testOptions("order_1"),
		SuccessURL: "/checkout/order_1/success",
		FailureURL: "/checkout/order_1/failure",
	}, mounted)
	require.Equal(t, 1, w.Pending())
}

func TestHostedWidget_OpenRequiresOrderIDAndOwner(t *testing.T) {
	w := checkout.NewHostedWidget(scriptURL, time.Minute)
	err := w.Open(ui.NewRecorder(), testOptions(""), nil, nil)
	require.ErrorIs(t, err, werrors.ErrMissingField)

	opts := testOptions("order_1")
	opts.Owner = ""
	err = w.Open(ui.NewRecorder(), opts, nil, nil)
	require.ErrorIs(t, err, werrors.ErrMissingField)
	require.Zero(t, w.Pending())
}

func TestHostedWidget_CallbacksFromAnotherOwnerAreRejected(t *testing.T) {
	w := checkout.NewHostedWidget(scriptURL, time.Minute)
	successes, failures := 0, 0
	require.NoError(t, w.Open(ui.NewRecorder(), testOptions("order_4"),
		func(ui.Page, checkout.Payment) { successes++ },
		func(ui.Page, checkout.Failure) { failures++ },
	))

	require.ErrorIs(t, w.Succeed(ui.NewRecorder(), "order_4", "user:8", checkout.Payment{}), werrors.ErrUnknownOrder)
	require.ErrorIs(t, w.Fail(ui.NewRecorder(), "order_4", "", checkout.Failure{}), werrors.ErrUnknownOrder)
	require.Zero(t, successes)
	require.Zero(t, failures)
	require.Equal(t, 1, w.Pending())

	require.NoError(t, w.Succeed(ui.NewRecorder(), "order_4", owner, checkout.Payment{}))
	require.Equal(t, 1, successes)
}

func TestHostedWidget_SucceedDispatchesOnce(t *testing.T) {
	w := checkout.NewHostedWidget(scriptURL, time.Minute)
	var got checkout.Payment
	calls := 0
	onSuccess := func(page ui.Page, p checkout.Payment) {
		calls++
		got = p
		page.Show("paid", notify.KindSuccess)
	}
	require.NoError(t, w.Open(ui.NewRecorder(), testOptions("order_2"), onSuccess, nil))

	callback := ui.NewRecorder()
	payment := checkout.Payment{PaymentID: "pay_1", OrderID: "order_2", Signature: "sig"}
	require.NoError(t, w.Succeed(callback, "order_2", owner, payment))
	require.Equal(t, 1, calls)
	require.Equal(t, payment, got)
	require.Equal(t, "paid", callback.Items()[0].Message)

	err := w.Succeed(ui.NewRecorder(), "order_2", owner, payment)
	require.ErrorIs(t, err, werrors.ErrUnknownOrder)
	require.Equal(t, 1, calls)
}

func TestHostedWidget_FailKeepsOrderPending(t *testing.T) {
	w := checkout.NewHostedWidget(scriptURL, time.Minute)
	failures := 0
	successes := 0
	require.NoError(t, w.Open(ui.NewRecorder(), testOptions("order_3"),
		func(ui.Page, checkout.Payment) { successes++ },
		func(ui.Page, checkout.Failure) { failures++ },
	))

	require.NoError(t, w.Fail(ui.NewRecorder(), "order_3", owner, checkout.Failure{Code: "BAD_REQUEST_ERROR"}))
	require.NoError(t, w.Fail(ui.NewRecorder(), "order_3", owner, checkout.Failure{Code: "BAD_REQUEST_ERROR"}))
	require.Equal(t, 2, failures)
	require.Equal(t, 1, w.Pending())

	require.NoError(t, w.Succeed(ui.NewRecorder(), "order_3", owner, checkout.Payment{}))
	require.Equal(t, 1, successes)
	require.Zero(t, w.Pending())
}

func TestHostedWidget_UnknownOrder(t *testing.T) {
	w := checkout.NewHostedWidget(scriptURL, time.Minute)
	require.ErrorIs(t, w.Fail(ui.NewRecorder(), "missing", owner, checkout.Failure{}), werrors.ErrUnknownOrder)
}

func TestHostedWidget_ExpiredOrdersAreEvicted(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	w := checkout.NewHostedWidget(scriptURL, 30*time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, w.Open(ui.NewRecorder(), testOptions("old"), nil, nil))
	now = now.Add(31 * time.Minute)

	require.ErrorIs(t, w.Succeed(ui.NewRecorder(), "old", owner, checkout.Payment{}), werrors.ErrUnknownOrder)

	require.NoError(t, w.Open(ui.NewRecorder(), testOptions("a"), nil, nil))
	now = now.Add(31 * time.Minute)
	require.NoError(t, w.Open(ui.NewRecorder(), testOptions("b"), nil, nil))
	require.Equal(t, 1, w.Pending())
}
