package apiclient

// Direction of a transaction relative to the signed-in user
type Direction string

const (
	DirectionSent     Direction = "SENT"
	DirectionReceived Direction = "RECEIVED"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and registration
type AuthResponse struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

type BalanceResponse struct {
	WalletID int64  `json:"walletId"`
	Balance  Amount `json:"balance"`
	Currency string `json:"currency"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
}

type Transaction struct {
	TxnRef            string    `json:"txnRef"`
	Direction         Direction `json:"direction"`
	Type              string    `json:"type"`
	Amount            Amount    `json:"amount"`
	Status            string    `json:"status"`
	Description       string    `json:"description"`
	CounterpartyName  *string   `json:"counterpartyName"`
	CounterpartyPhone *string   `json:"counterpartyPhone"`
	// CreatedAt is an ISO-8601 local date-time, usually without a zone offset
	CreatedAt string `json:"createdAt"`
}

// TransactionPage is one page of history. Last marks the final page.
type TransactionPage struct {
	Content       []Transaction `json:"content"`
	Last          bool          `json:"last"`
	First         bool          `json:"first"`
	Number        int           `json:"number"`
	TotalPages    int           `json:"totalPages"`
	TotalElements int64         `json:"totalElements"`
}

type TransferRequest struct {
	RecipientPhone string  `json:"recipientPhone"`
	Amount         float64 `json:"amount"`
	Note           string  `json:"note,omitempty"`
}

type TransferResponse struct {
	TxnRef         string `json:"txnRef"`
	SenderName     string `json:"senderName"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Amount         Amount `json:"amount"`
	Status         string `json:"status"`
	Note           string `json:"note"`
	NewBalance     Amount `json:"newBalance"`
}

type CreateOrderRequest struct {
	Amount float64 `json:"amount"`
}

// PaymentOrderResponse describes an order opened with the payment gateway
type PaymentOrderResponse struct {
	OrderID  string `json:"razorpayOrderId"`
	Amount   Amount `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	KeyID    string `json:"keyId"`
}

type ProfileResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	MemberSince string `json:"memberSince"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ForgotPasswordResponse carries the reset token directly; the backend does not send mail
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserLookup struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Exists bool   `json:"exists"`
}
