package company

import "errors"

var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrAlreadySubscribed      = errors.New("a trial or paid subscription already exists for this company")
	ErrSubscriptionNotActive  = errors.New("subscription is not active")
	ErrTrialNotCancellable    = errors.New("trial subscriptions cannot be cancelled, they expire on their own")
	ErrInvalidPlanType        = errors.New("plan type must be monthly or annual")
	ErrPaymentNotConfirmed    = errors.New("payment has not been confirmed by the checkout provider")
)
