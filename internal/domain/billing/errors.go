package billing

import "errors"

var (
	ErrHistoryEntryNotFound = errors.New("subscription history entry not found")
	ErrDuplicatePaymentRef  = errors.New("payment reference has already been recorded")
)
