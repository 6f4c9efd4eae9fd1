package valueobjects

type SubscriptionStatus string

const (
	StatusNone      SubscriptionStatus = "none"
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanUseService reports whether the company is currently entitled to the
// gated features. Cancelled counts because access runs until the already
// paid period ends; expiry evaluation flips it to expired once that passes.
func (s SubscriptionStatus) CanUseService() bool {
	return s == StatusTrial || s == StatusActive || s == StatusCancelled
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusNone:      {StatusTrial, StatusActive},
		StatusTrial:     {StatusActive, StatusExpired},
		StatusActive:    {StatusActive, StatusCancelled, StatusExpired},
		StatusExpired:   {StatusActive},
		StatusCancelled: {StatusActive, StatusExpired},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusNone:      true,
	StatusTrial:     true,
	StatusActive:    true,
	StatusExpired:   true,
	StatusCancelled: true,
}
