package usecases

import (
	"context"
	"net/http"

	"upkeep/internal/application/billing/checkoutgateway"
	"upkeep/internal/domain/billing"
	"upkeep/internal/domain/company"
	"upkeep/internal/shared/logger"
)

type mockCompanyRepository struct {
	CreateFunc   func(ctx context.Context, c *company.Company) error
	GetByIDFunc  func(ctx context.Context, id uint) (*company.Company, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*company.Company, error)
	UpdateFunc   func(ctx context.Context, c *company.Company) error
	DeleteFunc   func(ctx context.Context, id uint) error
	ListFunc     func(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error)
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCompanyRepository) List(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockHistoryRepository struct {
	AppendFunc           func(ctx context.Context, entry *billing.HistoryEntry) error
	FindByPaymentRefFunc func(ctx context.Context, paymentRef string) (*billing.HistoryEntry, error)
	ListByCompanyIDFunc  func(ctx context.Context, companyID uint, page, pageSize int) ([]*billing.HistoryEntry, int64, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *billing.HistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) FindByPaymentRef(ctx context.Context, paymentRef string) (*billing.HistoryEntry, error) {
	if m.FindByPaymentRefFunc != nil {
		return m.FindByPaymentRefFunc(ctx, paymentRef)
	}
	return nil, nil
}

func (m *mockHistoryRepository) ListByCompanyID(ctx context.Context, companyID uint, page, pageSize int) ([]*billing.HistoryEntry, int64, error) {
	if m.ListByCompanyIDFunc != nil {
		return m.ListByCompanyIDFunc(ctx, companyID, page, pageSize)
	}
	return nil, 0, nil
}

// mockTxManager runs the function directly; rollback semantics are covered
// by the repository integration tests.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEntitlementCache struct {
	GetFunc        func(ctx context.Context, companySID string) (*Entitlement, error)
	SetFunc        func(ctx context.Context, companySID string, entitlement *Entitlement) error
	InvalidateFunc func(ctx context.Context, companySID string) error

	invalidated []string
}

func (m *mockEntitlementCache) Get(ctx context.Context, companySID string) (*Entitlement, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, companySID)
	}
	return nil, nil
}

func (m *mockEntitlementCache) Set(ctx context.Context, companySID string, entitlement *Entitlement) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, companySID, entitlement)
	}
	return nil
}

func (m *mockEntitlementCache) Invalidate(ctx context.Context, companySID string) error {
	m.invalidated = append(m.invalidated, companySID)
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, companySID)
	}
	return nil
}

type mockCheckoutGateway struct {
	CreateCheckoutSessionFunc func(ctx context.Context, req checkoutgateway.CreateSessionRequest) (*checkoutgateway.CreateSessionResponse, error)
	VerifyCallbackFunc        func(req *http.Request) (*checkoutgateway.CallbackData, error)
}

func (m *mockCheckoutGateway) CreateCheckoutSession(ctx context.Context, req checkoutgateway.CreateSessionRequest) (*checkoutgateway.CreateSessionResponse, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, req)
	}
	return &checkoutgateway.CreateSessionResponse{SessionID: "cs_test", URL: "https://checkout.invalid/session/cs_test"}, nil
}

func (m *mockCheckoutGateway) VerifyCallback(req *http.Request) (*checkoutgateway.CallbackData, error) {
	if m.VerifyCallbackFunc != nil {
		return m.VerifyCallbackFunc(req)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
