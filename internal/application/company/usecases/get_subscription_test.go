package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upkeep/internal/domain/company"
	vo "upkeep/internal/domain/company/value_objects"
	apperrors "upkeep/internal/shared/errors"
)

func TestGetSubscriptionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns current state with remaining days", func(t *testing.T) {
		comp := newFreshCompany(t, "co_abc123")
		require.NoError(t, comp.ActivatePlan(vo.PlanMonthly, time.Now().UTC()))

		repo := &mockCompanyRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*company.Company, error) {
				return comp, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				t.Fatal("reading an unexpired subscription must not write")
				return nil
			},
		}

		uc := NewGetSubscriptionUseCase(repo, nil, &mockLogger{})
		result, err := uc.Execute(ctx, GetSubscriptionQuery{CompanySID: "co_abc123"})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive.String(), result.Status)
		assert.Positive(t, result.RemainingDays)
	})

	t.Run("lazily expires and persists the transition", func(t *testing.T) {
		now := time.Now().UTC()
		start := now.AddDate(0, 0, -10)
		end := now.AddDate(0, 0, -3)
		comp, err := company.ReconstructCompany(1, "co_abc123", "Acme", vo.PlanTrial, vo.StatusTrial, &start, &end, start, start)
		require.NoError(t, err)

		updates := 0
		repo := &mockCompanyRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*company.Company, error) {
				return comp, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				updates++
				return nil
			},
		}
		cache := &mockEntitlementCache{}

		uc := NewGetSubscriptionUseCase(repo, cache, &mockLogger{})

		result, err := uc.Execute(ctx, GetSubscriptionQuery{CompanySID: "co_abc123"})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusExpired.String(), result.Status)
		assert.Zero(t, result.RemainingDays)
		assert.Equal(t, 1, updates)
		assert.Equal(t, []string{"co_abc123"}, cache.invalidated)

		// A second read finds the stored expired state and writes nothing.
		result, err = uc.Execute(ctx, GetSubscriptionQuery{CompanySID: "co_abc123"})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusExpired.String(), result.Status)
		assert.Equal(t, 1, updates)
	})

	t.Run("unknown company", func(t *testing.T) {
		uc := NewGetSubscriptionUseCase(&mockCompanyRepository{}, nil, &mockLogger{})
		_, err := uc.Execute(ctx, GetSubscriptionQuery{CompanySID: "co_missing"})

		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
