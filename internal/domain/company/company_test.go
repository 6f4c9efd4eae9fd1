package company

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "upkeep/internal/domain/company/value_objects"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCompany(t *testing.T) *Company {
	t.Helper()
	c, err := NewCompany("co_xK9mP2vL3nQ4", "Acme Fabrication")
	require.NoError(t, err)
	c.SetID(1)
	return c
}

func TestNewCompany(t *testing.T) {
	t.Run("starts without subscription", func(t *testing.T) {
		c := newTestCompany(t)
		assert.Equal(t, vo.PlanNone, c.PlanType())
		assert.Equal(t, vo.StatusNone, c.Status())
		assert.Nil(t, c.StartDate())
		assert.Nil(t, c.EndDate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCompany("co_abc", "   ")
		assert.Error(t, err)
	})

	t.Run("rejects empty SID", func(t *testing.T) {
		_, err := NewCompany("", "Acme")
		assert.Error(t, err)
	})
}

func TestStartTrial(t *testing.T) {
	t.Run("sets trial window", func(t *testing.T) {
		c := newTestCompany(t)

		require.NoError(t, c.StartTrial(baseTime, 7))
		assert.Equal(t, vo.PlanTrial, c.PlanType())
		assert.Equal(t, vo.StatusTrial, c.Status())
		require.NotNil(t, c.StartDate())
		require.NotNil(t, c.EndDate())
		assert.Equal(t, baseTime, *c.StartDate())
		assert.Equal(t, baseTime.AddDate(0, 0, 7), *c.EndDate())
	})

	t.Run("second trial is rejected", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))

		err := c.StartTrial(baseTime.Add(time.Hour), 7)
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})

	t.Run("no trial after a paid subscription", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))

		err := c.StartTrial(baseTime, 7)
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})

	t.Run("no trial after expiry", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))
		c.EvaluateExpiry(baseTime.AddDate(0, 0, 8))

		err := c.StartTrial(baseTime.AddDate(0, 0, 9), 7)
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})
}

func TestActivatePlan(t *testing.T) {
	t.Run("monthly from scratch", func(t *testing.T) {
		c := newTestCompany(t)

		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		assert.Equal(t, vo.PlanMonthly, c.PlanType())
		assert.Equal(t, vo.StatusActive, c.Status())
		assert.Equal(t, baseTime, *c.StartDate())
		assert.Equal(t, baseTime.AddDate(0, 1, 0), *c.EndDate())
	})

	t.Run("annual from expired trial", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))
		c.EvaluateExpiry(baseTime.AddDate(0, 0, 8))

		checkout := baseTime.AddDate(0, 0, 10)
		require.NoError(t, c.ActivatePlan(vo.PlanAnnual, checkout))
		assert.Equal(t, vo.PlanAnnual, c.PlanType())
		assert.Equal(t, vo.StatusActive, c.Status())
		assert.Equal(t, checkout, *c.StartDate())
		assert.Equal(t, checkout.AddDate(1, 0, 0), *c.EndDate())
	})

	t.Run("renewal before expiry extends from current end", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		firstEnd := *c.EndDate()

		renewal := baseTime.AddDate(0, 0, 20)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, renewal))
		assert.Equal(t, firstEnd, *c.StartDate())
		assert.Equal(t, firstEnd.AddDate(0, 1, 0), *c.EndDate())
	})

	t.Run("activation from trial restarts at now", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))

		upgrade := baseTime.AddDate(0, 0, 3)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, upgrade))
		assert.Equal(t, upgrade, *c.StartDate())
		assert.Equal(t, upgrade.AddDate(0, 1, 0), *c.EndDate())
	})

	t.Run("reactivation after cancel restarts at now", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		require.NoError(t, c.Cancel(baseTime.AddDate(0, 0, 5)))

		comeback := baseTime.AddDate(0, 0, 10)
		require.NoError(t, c.ActivatePlan(vo.PlanAnnual, comeback))
		assert.Equal(t, vo.StatusActive, c.Status())
		assert.Equal(t, comeback, *c.StartDate())
	})

	t.Run("rejects non-paid plan types", func(t *testing.T) {
		c := newTestCompany(t)
		assert.ErrorIs(t, c.ActivatePlan(vo.PlanTrial, baseTime), ErrInvalidPlanType)
		assert.ErrorIs(t, c.ActivatePlan(vo.PlanNone, baseTime), ErrInvalidPlanType)
		assert.ErrorIs(t, c.ActivatePlan("weekly", baseTime), ErrInvalidPlanType)
	})
}

func TestCancel(t *testing.T) {
	t.Run("keeps end date", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		end := *c.EndDate()

		require.NoError(t, c.Cancel(baseTime.AddDate(0, 0, 10)))
		assert.Equal(t, vo.StatusCancelled, c.Status())
		assert.Equal(t, end, *c.EndDate())
	})

	t.Run("fails when not active", func(t *testing.T) {
		c := newTestCompany(t)
		assert.ErrorIs(t, c.Cancel(baseTime), ErrSubscriptionNotActive)

		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		require.NoError(t, c.Cancel(baseTime))
		assert.ErrorIs(t, c.Cancel(baseTime), ErrSubscriptionNotActive)
	})

	t.Run("trials cannot be cancelled", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))

		err := c.Cancel(baseTime.AddDate(0, 0, 2))
		assert.ErrorIs(t, err, ErrSubscriptionNotActive)
	})
}

func TestEvaluateExpiry(t *testing.T) {
	t.Run("no-op before end date", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))

		assert.False(t, c.EvaluateExpiry(baseTime.AddDate(0, 0, 6)))
		assert.Equal(t, vo.StatusTrial, c.Status())

		assert.False(t, c.EvaluateExpiry(*c.EndDate()))
		assert.Equal(t, vo.StatusTrial, c.Status())
	})

	t.Run("expires trial after end date, idempotently", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))
		after := c.EndDate().Add(time.Second)

		assert.True(t, c.EvaluateExpiry(after))
		assert.Equal(t, vo.StatusExpired, c.Status())

		assert.False(t, c.EvaluateExpiry(after.Add(time.Hour)))
		assert.Equal(t, vo.StatusExpired, c.Status())
	})

	t.Run("expires cancelled subscription once paid window lapses", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		require.NoError(t, c.Cancel(baseTime.AddDate(0, 0, 10)))
		end := *c.EndDate()

		assert.False(t, c.EvaluateExpiry(end.Add(-time.Hour)))
		assert.Equal(t, vo.StatusCancelled, c.Status())

		assert.True(t, c.EvaluateExpiry(end.Add(time.Second)))
		assert.Equal(t, vo.StatusExpired, c.Status())
	})

	t.Run("never touches none or expired", func(t *testing.T) {
		c := newTestCompany(t)
		assert.False(t, c.EvaluateExpiry(baseTime))
		assert.Equal(t, vo.StatusNone, c.Status())
	})
}

func TestRemainingDays(t *testing.T) {
	t.Run("counts up to the end date", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))

		assert.Equal(t, 31, c.RemainingDays(baseTime))
		assert.Equal(t, 21, c.RemainingDays(baseTime.AddDate(0, 0, 10)))
	})

	t.Run("rounds partial days up", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))

		assert.Equal(t, 7, c.RemainingDays(baseTime))
		assert.Equal(t, 1, c.RemainingDays(c.EndDate().Add(-time.Minute)))
	})

	t.Run("clamps at zero", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.StartTrial(baseTime, 7))

		assert.Equal(t, 0, c.RemainingDays(c.EndDate().Add(time.Hour)))
	})

	t.Run("zero without an end date", func(t *testing.T) {
		c := newTestCompany(t)
		assert.Equal(t, 0, c.RemainingDays(baseTime))
	})

	t.Run("cancellation keeps the remaining window", func(t *testing.T) {
		c := newTestCompany(t)
		require.NoError(t, c.ActivatePlan(vo.PlanMonthly, baseTime))
		require.NoError(t, c.Cancel(baseTime.AddDate(0, 0, 10)))

		assert.Equal(t, 21, c.RemainingDays(baseTime.AddDate(0, 0, 10)))
	})
}

func TestReconstructCompany(t *testing.T) {
	now := time.Now()
	end := now.AddDate(0, 1, 0)

	t.Run("valid reconstruction", func(t *testing.T) {
		c, err := ReconstructCompany(3, "co_abc123def456", "Acme", vo.PlanMonthly, vo.StatusActive, &now, &end, now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(3), c.ID())
		assert.Equal(t, vo.StatusActive, c.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := ReconstructCompany(3, "co_abc", "Acme", vo.PlanMonthly, "suspended", &now, &end, now, now)
		assert.Error(t, err)
	})

	t.Run("rejects zero ID", func(t *testing.T) {
		_, err := ReconstructCompany(0, "co_abc", "Acme", vo.PlanNone, vo.StatusNone, nil, nil, now, now)
		assert.Error(t, err)
	})
}
