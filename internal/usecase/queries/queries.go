package queries

import (
	"context"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/infra"
	"kantine-order-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// Not-found sentinels for the read side.
var (
	ErrRoomNotFound    = errs.New("room not found")
	ErrProductNotFound = errs.New("product not found")
	ErrOptionNotFound  = errs.New("option not found")
	ErrOrderNotFound   = errs.New("order not found")
)

// Read ports. The repository implementations satisfy these alongside the
// write ports in the commands package.

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindAll(ctx context.Context) ([]*room.Room, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	FindAll(ctx context.Context) ([]*catalog.Product, error)
}

type OptionReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Option, error)
	FindAll(ctx context.Context) ([]*catalog.Option, error)
}

type OrderReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindAll(ctx context.Context) ([]*order.Order, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
}

type OptionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OptionView, error)
	List(ctx context.Context) ([]*OptionView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
}

type roomQueriesImpl struct {
	reader RoomReader
}

func NewRoomQueries(reader RoomReader) RoomQueries {
	return &roomQueriesImpl{reader: reader}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	r, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return RoomViewOf(r), nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.reader.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = RoomViewOf(r)
	}
	return views, nil
}

type productQueriesImpl struct {
	reader ProductReader
}

func NewProductQueries(reader ProductReader) ProductQueries {
	return &productQueriesImpl{reader: reader}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	p, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return ProductViewOf(p), nil
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	products, err := q.reader.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ProductView, len(products))
	for i, p := range products {
		views[i] = ProductViewOf(p)
	}
	return views, nil
}

type optionQueriesImpl struct {
	reader OptionReader
}

func NewOptionQueries(reader OptionReader) OptionQueries {
	return &optionQueriesImpl{reader: reader}
}

func (q *optionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OptionView, error) {
	o, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}
	return OptionViewOf(o), nil
}

func (q *optionQueriesImpl) List(ctx context.Context) ([]*OptionView, error) {
	options, err := q.reader.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*OptionView, len(options))
	for i, o := range options {
		views[i] = OptionViewOf(o)
	}
	return views, nil
}

type orderQueriesImpl struct {
	reader OrderReader
}

func NewOrderQueries(reader OrderReader) OrderQueries {
	return &orderQueriesImpl{reader: reader}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	o, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return OrderViewOf(o), nil
}

func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	orders, err := q.reader.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = OrderViewOf(o)
	}
	return views, nil
}
