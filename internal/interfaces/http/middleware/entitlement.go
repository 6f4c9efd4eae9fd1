package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"upkeep/internal/application/company/usecases"
	"upkeep/internal/domain/company"
	vo "upkeep/internal/domain/company/value_objects"
	"upkeep/internal/shared/biztime"
	"upkeep/internal/shared/constants"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/id"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/utils"
)

// EntitlementMiddleware gates feature routes on the caller's subscription
// state. The company is identified by the X-Company-ID header carrying its
// SID. A short-lived Redis snapshot answers most requests; misses and stale
// entries fall through to the database, where expiry is evaluated lazily and
// persisted before the access decision is made.
type EntitlementMiddleware struct {
	companyRepo company.Repository
	cache       usecases.EntitlementCache
	logger      logger.Interface
}

func NewEntitlementMiddleware(companyRepo company.Repository, cache usecases.EntitlementCache, logger logger.Interface) *EntitlementMiddleware {
	return &EntitlementMiddleware{
		companyRepo: companyRepo,
		cache:       cache,
		logger:      logger,
	}
}

// RequireActiveSubscription blocks the request unless the company currently
// holds service access. On success the company ID and SID are stored on the
// Gin context for handlers downstream.
func (m *EntitlementMiddleware) RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(constants.HeaderCompanySID)
		if sid == "" {
			utils.ErrorResponseWithError(c, errors.NewValidationError("company ID header is required"))
			c.Abort()
			return
		}
		if err := id.ValidatePrefix(sid, id.PrefixCompany); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid company ID format"))
			c.Abort()
			return
		}

		now := biztime.NowUTC()

		if ent := m.cachedEntitlement(c, sid, now); ent != nil {
			c.Set(constants.ContextKeyCompanyID, ent.CompanyID)
			c.Set(constants.ContextKeyCompanySID, sid)
			c.Next()
			return
		}

		comp, err := m.companyRepo.GetBySID(c.Request.Context(), sid)
		if err != nil {
			m.logger.Errorw("failed to load company for entitlement check", "error", err, "company_sid", sid)
			utils.ErrorResponseWithError(c, errors.NewInternalError("failed to verify subscription"))
			c.Abort()
			return
		}
		if comp == nil {
			utils.ErrorResponseWithError(c, errors.NewNotFoundError("company not found"))
			c.Abort()
			return
		}

		if comp.EvaluateExpiry(now) {
			if err := m.companyRepo.Update(c.Request.Context(), comp); err != nil {
				m.logger.Errorw("failed to persist lazy expiry", "error", err, "company_sid", sid)
			}
		}

		if !comp.Status().CanUseService() {
			utils.ErrorResponseWithError(c, errors.NewPaymentRequiredError("an active subscription is required"))
			c.Abort()
			return
		}

		m.storeEntitlement(c, sid, comp)

		c.Set(constants.ContextKeyCompanyID, comp.ID())
		c.Set(constants.ContextKeyCompanySID, sid)
		c.Next()
	}
}

// cachedEntitlement returns a usable cached snapshot, or nil when the
// request has to hit the database. Entries whose end date has passed are
// ignored so the expiry transition gets persisted by the database path.
func (m *EntitlementMiddleware) cachedEntitlement(c *gin.Context, sid string, now time.Time) *usecases.Entitlement {
	if m.cache == nil {
		return nil
	}

	ent, err := m.cache.Get(c.Request.Context(), sid)
	if err != nil {
		m.logger.Warnw("entitlement cache read failed", "error", err, "company_sid", sid)
		return nil
	}
	if ent == nil {
		return nil
	}
	if !vo.SubscriptionStatus(ent.Status).CanUseService() {
		return nil
	}
	if ent.EndDate != nil && now.After(*ent.EndDate) {
		return nil
	}
	return ent
}

func (m *EntitlementMiddleware) storeEntitlement(c *gin.Context, sid string, comp *company.Company) {
	if m.cache == nil {
		return
	}

	ent := &usecases.Entitlement{
		CompanyID: comp.ID(),
		Status:    comp.Status().String(),
		EndDate:   comp.EndDate(),
	}
	if err := m.cache.Set(c.Request.Context(), sid, ent); err != nil {
		m.logger.Warnw("entitlement cache write failed", "error", err, "company_sid", sid)
	}
}
