package request

import (
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProductLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity"`
}

type OptionLineRequest struct {
	OptionID uuid.UUID `json:"optionId" binding:"required"`
	Quantity int       `json:"quantity"`
}

type CreateOrderRequest struct {
	RequestedDeliveryDate Date                 `json:"requestedDeliveryDate" binding:"required"`
	RoomID                uuid.UUID            `json:"roomId" binding:"required"`
	Products              []ProductLineRequest `json:"products"`
	Options               []OptionLineRequest  `json:"options,omitempty"`
}

func (r CreateOrderRequest) ToDraft() order.Draft {
	return order.Draft{
		RequestedDeliveryDate: r.RequestedDeliveryDate.Time,
		RoomID:                r.RoomID,
		Products:              productLines(r.Products),
		Options:               optionLines(r.Options),
	}
}

type UpdateOrderRequest struct {
	RequestedDeliveryDate *Date                `json:"requestedDeliveryDate,omitempty"`
	RoomID                *uuid.UUID           `json:"roomId,omitempty"`
	Products              []ProductLineRequest `json:"products,omitempty"`
	Options               []OptionLineRequest  `json:"options,omitempty"`
}

func (r UpdateOrderRequest) ToPatch() commands.OrderPatch {
	p := commands.OrderPatch{
		RoomID:   r.RoomID,
		Products: productLines(r.Products),
		Options:  optionLines(r.Options),
	}
	if r.RequestedDeliveryDate != nil {
		t := r.RequestedDeliveryDate.Time
		p.RequestedDeliveryDate = &t
	}
	return p
}

func productLines(reqs []ProductLineRequest) []order.ProductLine {
	if reqs == nil {
		return nil
	}
	lines := make([]order.ProductLine, len(reqs))
	for i, l := range reqs {
		lines[i] = order.ProductLine{ProductID: l.ProductID, Quantity: l.Quantity}
	}
	return lines
}

func optionLines(reqs []OptionLineRequest) []order.OptionLine {
	if reqs == nil {
		return nil
	}
	lines := make([]order.OptionLine, len(reqs))
	for i, l := range reqs {
		lines[i] = order.OptionLine{OptionID: l.OptionID, Quantity: l.Quantity}
	}
	return lines
}
