package contact

import "context"

type Repository interface {
	Create(ctx context.Context, message *Message) error
	GetByID(ctx context.Context, id uint) (*Message, error)
	List(ctx context.Context, filter Filter) ([]*Message, int64, error)
}

type Filter struct {
	Kind     *MessageKind
	Page     int
	PageSize int
}
