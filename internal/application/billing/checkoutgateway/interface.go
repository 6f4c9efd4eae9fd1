package checkoutgateway

import (
	"context"
	"net/http"
	"time"
)

// CheckoutGateway abstracts the external payment provider. Creating a
// session never mutates subscription state; only a verified completion
// callback does.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResponse, error)
	// VerifyCallback authenticates and parses the provider's server-to-server
	// completion callback. AmountCents is in the smallest currency unit.
	VerifyCallback(req *http.Request) (*CallbackData, error)
}

type CreateSessionRequest struct {
	CompanySID  string
	PlanType    string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	CallbackURL string
}

type CreateSessionResponse struct {
	SessionID string
	URL       string
}

// CallbackStatus values reported by the provider.
const (
	CallbackStatusCompleted = "completed"
	CallbackStatusFailed    = "failed"
)

// CallbackData is the parsed completion callback. PaymentRef uniquely
// identifies the payment on the provider side and is the idempotency key
// for processing; callbacks are delivered at least once.
type CallbackData struct {
	CompanySID  string
	PlanType    string
	AmountCents int64
	Currency    string
	PaymentRef  string
	Status      string
	PaidAt      time.Time
}
