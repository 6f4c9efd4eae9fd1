package workorder

import "errors"

var (
	ErrWorkOrderNotFound        = errors.New("work order not found")
	ErrDuplicateWorkOrderNumber = errors.New("work order number already exists for this company")
	ErrNumberAlreadyAssigned    = errors.New("work order number has already been assigned")
	ErrInvalidStatusTransition  = errors.New("invalid work order status transition")
)
