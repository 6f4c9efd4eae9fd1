package company

import "context"

type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	GetBySID(ctx context.Context, sid string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, pageSize int) ([]*Company, int64, error)
}
