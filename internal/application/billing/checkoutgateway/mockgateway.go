package checkoutgateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"upkeep/internal/shared/id"
)

// MockGateway is an in-process gateway for development and tests. Sessions
// are "completed" by posting the callback form it would have sent.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResponse, error) {
	if req.CompanySID == "" {
		return nil, fmt.Errorf("company SID is required")
	}
	sessionID := id.MustGenerateWithPrefix("cs", 16)
	return &CreateSessionResponse{
		SessionID: sessionID,
		URL:       fmt.Sprintf("https://checkout.invalid/session/%s", sessionID),
	}, nil
}

func (g *MockGateway) VerifyCallback(req *http.Request) (*CallbackData, error) {
	if err := req.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse callback form: %w", err)
	}

	amount, err := strconv.ParseInt(req.PostForm.Get("amount_cents"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount in callback: %w", err)
	}

	paymentRef := req.PostForm.Get("payment_ref")
	if paymentRef == "" {
		return nil, fmt.Errorf("payment reference is missing from callback")
	}

	status := req.PostForm.Get("status")
	if status == "" {
		status = CallbackStatusCompleted
	}

	return &CallbackData{
		CompanySID:  req.PostForm.Get("company_sid"),
		PlanType:    req.PostForm.Get("plan_type"),
		AmountCents: amount,
		Currency:    req.PostForm.Get("currency"),
		PaymentRef:  paymentRef,
		Status:      status,
		PaidAt:      time.Now().UTC(),
	}, nil
}
