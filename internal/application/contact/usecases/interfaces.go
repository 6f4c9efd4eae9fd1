package usecases

import "context"

type CreateMessageExecutor interface {
	Execute(ctx context.Context, cmd CreateMessageCommand) (*MessageResult, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error)
}
