package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upkeep/internal/application/billing/checkoutgateway"
	"upkeep/internal/domain/billing"
	"upkeep/internal/domain/company"
	vo "upkeep/internal/domain/company/value_objects"
	apperrors "upkeep/internal/shared/errors"
)

func completedCommand(ref string) CompleteCheckoutCommand {
	return CompleteCheckoutCommand{
		CompanySID:  "co_abc123",
		PlanType:    "monthly",
		AmountCents: 4900,
		Currency:    "USD",
		PaymentRef:  ref,
		Status:      checkoutgateway.CallbackStatusCompleted,
	}
}

func TestCompleteCheckoutUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("activates plan and appends exactly one ledger row", func(t *testing.T) {
		comp := newFreshCompany(t, "co_abc123")
		var appended *billing.HistoryEntry
		var updated *company.Company

		repo := &mockCompanyRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*company.Company, error) {
				return comp, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				updated = c
				return nil
			},
		}
		histRepo := &mockHistoryRepository{
			AppendFunc: func(ctx context.Context, entry *billing.HistoryEntry) error {
				appended = entry
				return nil
			},
		}
		cache := &mockEntitlementCache{}

		uc := NewCompleteCheckoutUseCase(repo, histRepo, &mockTxManager{}, cache, &mockLogger{})
		result, err := uc.Execute(ctx, completedCommand("pay_1"))

		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive.String(), result.Status)
		assert.Equal(t, vo.PlanMonthly.String(), result.PlanType)
		require.NotNil(t, result.EndDate)

		require.NotNil(t, updated)
		require.NotNil(t, appended)
		assert.Equal(t, "pay_1", appended.PaymentRef())
		assert.Equal(t, int64(4900), appended.AmountCents())
		assert.Equal(t, []string{"co_abc123"}, cache.invalidated)
	})

	t.Run("same payment reference is processed once", func(t *testing.T) {
		comp := newFreshCompany(t, "co_abc123")
		now := time.Now().UTC()
		require.NoError(t, comp.ActivatePlan(vo.PlanMonthly, now))
		firstEnd := *comp.EndDate()

		entry, err := billing.NewPaymentEntry(1, vo.PlanMonthly, 4900, "USD", "pay_1", now, firstEnd)
		require.NoError(t, err)

		appendCalls := 0
		repo := &mockCompanyRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*company.Company, error) {
				return comp, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				t.Fatal("duplicate delivery must not update the company")
				return nil
			},
		}
		histRepo := &mockHistoryRepository{
			FindByPaymentRefFunc: func(ctx context.Context, ref string) (*billing.HistoryEntry, error) {
				return entry, nil
			},
			AppendFunc: func(ctx context.Context, e *billing.HistoryEntry) error {
				appendCalls++
				return nil
			},
		}

		uc := NewCompleteCheckoutUseCase(repo, histRepo, &mockTxManager{}, nil, &mockLogger{})
		result, err := uc.Execute(ctx, completedCommand("pay_1"))

		require.NoError(t, err)
		assert.Zero(t, appendCalls)
		assert.Equal(t, vo.StatusActive.String(), result.Status)
		require.NotNil(t, result.EndDate)
		assert.Equal(t, firstEnd, *result.EndDate)
	})

	t.Run("concurrent duplicate hits the unique constraint and reports stored state", func(t *testing.T) {
		comp := newFreshCompany(t, "co_abc123")
		repo := &mockCompanyRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*company.Company, error) {
				return comp, nil
			},
		}
		histRepo := &mockHistoryRepository{
			AppendFunc: func(ctx context.Context, e *billing.HistoryEntry) error {
				return assert.AnError
			},
		}
		tx := &mockTxManager{
			RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				if err := fn(ctx); err != nil {
					return apperrors.NewConflictError("Duplicate entry 'pay_1' for key 'idx_payment_ref'")
				}
				return nil
			},
		}

		uc := NewCompleteCheckoutUseCase(repo, histRepo, tx, nil, &mockLogger{})
		result, err := uc.Execute(ctx, completedCommand("pay_1"))

		require.NoError(t, err)
		require.NotNil(t, result)
	})

	t.Run("unconfirmed payment mutates nothing", func(t *testing.T) {
		repo := &mockCompanyRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*company.Company, error) {
				t.Fatal("unconfirmed callback must not even load the company")
				return nil, nil
			},
		}

		uc := NewCompleteCheckoutUseCase(repo, &mockHistoryRepository{}, &mockTxManager{}, nil, &mockLogger{})
		cmd := completedCommand("pay_1")
		cmd.Status = checkoutgateway.CallbackStatusFailed
		_, err := uc.Execute(ctx, cmd)

		assert.Error(t, err)
	})

	t.Run("rejects unknown plan type", func(t *testing.T) {
		uc := NewCompleteCheckoutUseCase(&mockCompanyRepository{}, &mockHistoryRepository{}, &mockTxManager{}, nil, &mockLogger{})
		cmd := completedCommand("pay_1")
		cmd.PlanType = "trial"
		_, err := uc.Execute(ctx, cmd)

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("missing payment reference", func(t *testing.T) {
		uc := NewCompleteCheckoutUseCase(&mockCompanyRepository{}, &mockHistoryRepository{}, &mockTxManager{}, nil, &mockLogger{})
		cmd := completedCommand("")
		_, err := uc.Execute(ctx, cmd)

		assert.True(t, apperrors.IsValidationError(err))
	})
}
