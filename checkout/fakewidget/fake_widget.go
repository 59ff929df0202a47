package fakewidget

import (
	"errors"
	"sync"

	"github.com/jrsteele09/go-wallet-web/checkout"
	"github.com/jrsteele09/go-wallet-web/ui"
)

var _ checkout.Widget = (*FakeWidget)(nil)

// FakeWidget records opened checkouts and lets tests fire the gateway events
type FakeWidget struct {
	lock      sync.Mutex
	opened    []checkout.Options
	onSuccess checkout.SuccessHandler
	onFailure checkout.FailureHandler
	OpenErr   error
}

func NewFakeWidget() *FakeWidget {
	return &FakeWidget{}
}

func (f *FakeWidget) Open(page ui.Page, opts checkout.Options, onSuccess checkout.SuccessHandler, onFailure checkout.FailureHandler) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.OpenErr != nil {
		return f.OpenErr
	}
	f.opened = append(f.opened, opts)
	f.onSuccess = onSuccess
	f.onFailure = onFailure
	page.Mount(checkout.MountName, opts)
	return nil
}

func (f *FakeWidget) Opened() []checkout.Options {
	f.lock.Lock()
	defer f.lock.Unlock()
	out := make([]checkout.Options, len(f.opened))
	copy(out, f.opened)
	return out
}

// Succeed fires the success handler of the most recent checkout
func (f *FakeWidget) Succeed(page ui.Page, payment checkout.Payment) error {
	f.lock.Lock()
	h := f.onSuccess
	f.lock.Unlock()
	if h == nil {
		return errors.New("no checkout open")
	}
	h(page, payment)
	return nil
}

// Fail fires the failure handler of the most recent checkout
func (f *FakeWidget) Fail(page ui.Page, failure checkout.Failure) error {
	f.lock.Lock()
	h := f.onFailure
	f.lock.Unlock()
	if h == nil {
		return errors.New("no checkout open")
	}
	h(page, failure)
	return nil
}
