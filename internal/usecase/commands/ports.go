package commands

import (
	"context"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sentinel errors the handler layer maps to HTTP statuses.
var (
	ErrRoomNotFound         = errs.New("room not found")
	ErrProductNotFound      = errs.New("product not found")
	ErrOptionNotFound       = errs.New("option not found")
	ErrOrderNotFound        = errs.New("order not found")
	ErrConfirmationRequired = errs.New("confirmation required")
	ErrReferencedByOrders   = errs.New("referenced by existing orders")
	ErrDuplicateName        = errs.New("name already in use")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrStoreUnavailable     = errs.New("store unavailable")
)

// Repositories return infra.RepositoryError with KindNotFound for unknown
// ids; usecases translate that into absence or a not-found sentinel.

type RoomRepository interface {
	Insert(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Insert(ctx context.Context, p *catalog.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	Update(ctx context.Context, p *catalog.Product) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type OptionRepository interface {
	Insert(ctx context.Context, o *catalog.Option) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Option, error)
	Update(ctx context.Context, o *catalog.Option) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	Insert(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Update(ctx context.Context, o *order.Order) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
