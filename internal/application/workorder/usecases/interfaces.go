package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateWorkOrderCommand) (*WorkOrderResult, error)
}

type GetWorkOrderExecutor interface {
	Execute(ctx context.Context, query GetWorkOrderQuery) (*WorkOrderResult, error)
}

type ListWorkOrdersExecutor interface {
	Execute(ctx context.Context, query ListWorkOrdersQuery) (*ListWorkOrdersResult, error)
}

type UpdateWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd UpdateWorkOrderCommand) (*WorkOrderResult, error)
}

type DeleteWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd DeleteWorkOrderCommand) error
}
