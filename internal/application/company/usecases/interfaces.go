package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StartTrialExecutor interface {
	Execute(ctx context.Context, cmd StartTrialCommand) (*SubscriptionResult, error)
}

type CreateCheckoutSessionExecutor interface {
	Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (*CreateCheckoutSessionResult, error)
}

type CompleteCheckoutExecutor interface {
	Execute(ctx context.Context, cmd CompleteCheckoutCommand) (*SubscriptionResult, error)
}

type CancelSubscriptionExecutor interface {
	Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*SubscriptionResult, error)
}

type GetSubscriptionExecutor interface {
	Execute(ctx context.Context, query GetSubscriptionQuery) (*SubscriptionResult, error)
}
