package usecases

import (
	"context"

	"upkeep/internal/domain/workorder"
	"upkeep/internal/shared/logger"
)

type mockWorkOrderRepository struct {
	SaveFunc                 func(ctx context.Context, wo *workorder.WorkOrder) error
	GetByIDFunc              func(ctx context.Context, id uint) (*workorder.WorkOrder, error)
	GetLatestByCompanyIDFunc func(ctx context.Context, companyID uint) (*workorder.WorkOrder, error)
	UpdateFunc               func(ctx context.Context, wo *workorder.WorkOrder) error
	DeleteFunc               func(ctx context.Context, id uint) error
	ListFunc                 func(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error)
}

func (m *mockWorkOrderRepository) Save(ctx context.Context, wo *workorder.WorkOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, wo)
	}
	return nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) GetLatestByCompanyID(ctx context.Context, companyID uint) (*workorder.WorkOrder, error) {
	if m.GetLatestByCompanyIDFunc != nil {
		return m.GetLatestByCompanyIDFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, wo)
	}
	return nil
}

func (m *mockWorkOrderRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWorkOrderRepository) List(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockSequenceRepository struct {
	NextNumberFunc func(ctx context.Context, companyID uint) (string, error)
}

func (m *mockSequenceRepository) NextNumber(ctx context.Context, companyID uint) (string, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, companyID)
	}
	return "WO-0001", nil
}

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
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
