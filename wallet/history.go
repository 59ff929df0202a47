package wallet

import (
	"time"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	"github.com/jrsteele09/go-wallet-web/internal/utils"
)

// PageSize is the number of transactions requested per history page
const PageSize = 10

// CounterpartyFallback names the other side of a transaction that has none, e.g. a top-up
const CounterpartyFallback = "External"

// TransactionView is one display-ready row of history
type TransactionView struct {
	TxnRef       string
	Icon         string
	Class        string
	Description  string
	Counterparty string
	Phone        string
	Amount       string
	Date         string
	Time         string
	Type         string
	Status       string
}

func NewTransactionView(t apiclient.Transaction, loc *time.Location) TransactionView {
	counterparty := PlainText(utils.Value(t.CounterpartyName))
	if counterparty == "" {
		counterparty = CounterpartyFallback
	}
	return TransactionView{
		TxnRef:       t.TxnRef,
		Icon:         DirectionIcon(t.Direction),
		Class:        DirectionClass(t.Direction),
		Description:  PlainText(t.Description),
		Counterparty: counterparty,
		Phone:        utils.Value(t.CounterpartyPhone),
		Amount:       FormatSignedAmount(t.Direction, t.Amount.Float64()),
		Date:         FormatDate(t.CreatedAt, loc),
		Time:         FormatTime(t.CreatedAt, loc),
		Type:         t.Type,
		Status:       t.Status,
	}
}

// Pagination drives the Previous / current / Next buttons
type Pagination struct {
	Current      int
	PrevPage     int
	NextPage     int
	PrevDisabled bool
	NextDisabled bool
}

// HistoryView is a rendered page of history. When Empty is set nothing else is shown.
type HistoryView struct {
	Empty      bool
	Items      []TransactionView
	Pagination *Pagination
}

// BuildHistory shapes page (zero-based) of history. The empty state is only used on the first
// page; an empty later page still shows pagination so the user can go back.
func BuildHistory(page int, tp *apiclient.TransactionPage, loc *time.Location) HistoryView {
	if page < 0 {
		page = 0
	}
	if len(tp.Content) == 0 && page == 0 {
		return HistoryView{Empty: true}
	}

	items := make([]TransactionView, 0, len(tp.Content))
	for _, t := range tp.Content {
		items = append(items, NewTransactionView(t, loc))
	}
	return HistoryView{
		Items: items,
		Pagination: &Pagination{
			Current:      page + 1,
			PrevPage:     page - 1,
			NextPage:     page + 1,
			PrevDisabled: page == 0,
			NextDisabled: tp.Last,
		},
	}
}
