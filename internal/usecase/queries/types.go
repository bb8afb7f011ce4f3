package queries

import (
	"time"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/domain/room"

	"github.com/google/uuid"
)

// Read models returned to the handler layer.

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type WindowTimeView struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type OrderWindowView struct {
	From WindowTimeView `json:"from"`
	To   WindowTimeView `json:"to"`
}

type ProductView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	PriceOere        int64           `json:"price"`
	Availability     int             `json:"availability"`
	MaxOrderQuantity int             `json:"maxOrderQuantity"`
	OrderWindow      OrderWindowView `json:"orderWindow"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type OptionView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PriceOere        int64     `json:"price"`
	Availability     int       `json:"availability"`
	MaxOrderQuantity int       `json:"maxOrderQuantity"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type OrderProductView struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type OrderOptionView struct {
	OptionID uuid.UUID `json:"optionId"`
	Quantity int       `json:"quantity"`
}

type OrderView struct {
	ID                    uuid.UUID          `json:"id"`
	RequestedDeliveryDate time.Time          `json:"requestedDeliveryDate"`
	RoomID                uuid.UUID          `json:"roomId"`
	Products              []OrderProductView `json:"products"`
	Options               []OrderOptionView  `json:"options,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

func RoomViewOf(r *room.Room) *RoomView {
	return &RoomView{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func ProductViewOf(p *catalog.Product) *ProductView {
	w := p.OrderWindow()
	return &ProductView{
		ID:               p.ID(),
		Name:             p.Name(),
		PriceOere:        p.PriceOere(),
		Availability:     p.Availability(),
		MaxOrderQuantity: p.MaxOrderQuantity(),
		OrderWindow: OrderWindowView{
			From: WindowTimeView{Hour: w.From().Hour(), Minute: w.From().Minute()},
			To:   WindowTimeView{Hour: w.To().Hour(), Minute: w.To().Minute()},
		},
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func OptionViewOf(o *catalog.Option) *OptionView {
	return &OptionView{
		ID:               o.ID(),
		Name:             o.Name(),
		PriceOere:        o.PriceOere(),
		Availability:     o.Availability(),
		MaxOrderQuantity: o.MaxOrderQuantity(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

func OrderViewOf(o *order.Order) *OrderView {
	products := make([]OrderProductView, len(o.Products()))
	for i, line := range o.Products() {
		products[i] = OrderProductView{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	var options []OrderOptionView
	if len(o.Options()) > 0 {
		options = make([]OrderOptionView, len(o.Options()))
		for i, line := range o.Options() {
			options[i] = OrderOptionView{OptionID: line.OptionID, Quantity: line.Quantity}
		}
	}

	return &OrderView{
		ID:                    o.ID(),
		RequestedDeliveryDate: o.RequestedDeliveryDate(),
		RoomID:                o.RoomID(),
		Products:              products,
		Options:               options,
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}
