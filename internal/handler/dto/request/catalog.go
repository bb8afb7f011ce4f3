package request

import (
	"kantine-order-api/internal/usecase/commands"
)

type WindowTimeRequest struct {
	Hour   int `json:"hour" binding:"min=0,max=23"`
	Minute int `json:"minute" binding:"min=0,max=59"`
}

type OrderWindowRequest struct {
	From WindowTimeRequest `json:"from" binding:"required"`
	To   WindowTimeRequest `json:"to" binding:"required"`
}

func (w OrderWindowRequest) toParams() commands.WindowParams {
	return commands.WindowParams{
		FromHour:   w.From.Hour,
		FromMinute: w.From.Minute,
		ToHour:     w.To.Hour,
		ToMinute:   w.To.Minute,
	}
}

type CreateProductRequest struct {
	Name             string             `json:"name" binding:"required"`
	PriceOere        int64              `json:"price"`
	Availability     int                `json:"availability"`
	MaxOrderQuantity int                `json:"maxOrderQuantity" binding:"required"`
	OrderWindow      OrderWindowRequest `json:"orderWindow" binding:"required"`
}

func (r CreateProductRequest) ToParams() commands.CreateProductParams {
	return commands.CreateProductParams{
		Name:             r.Name,
		PriceOere:        r.PriceOere,
		Availability:     r.Availability,
		MaxOrderQuantity: r.MaxOrderQuantity,
		OrderWindow:      r.OrderWindow.toParams(),
	}
}

type UpdateProductRequest struct {
	Name             *string             `json:"name,omitempty"`
	PriceOere        *int64              `json:"price,omitempty"`
	Availability     *int                `json:"availability,omitempty"`
	MaxOrderQuantity *int                `json:"maxOrderQuantity,omitempty"`
	OrderWindow      *OrderWindowRequest `json:"orderWindow,omitempty"`
}

func (r UpdateProductRequest) ToPatch() commands.ProductPatch {
	p := commands.ProductPatch{
		Name:             r.Name,
		PriceOere:        r.PriceOere,
		Availability:     r.Availability,
		MaxOrderQuantity: r.MaxOrderQuantity,
	}
	if r.OrderWindow != nil {
		w := r.OrderWindow.toParams()
		p.OrderWindow = &w
	}
	return p
}

type CreateOptionRequest struct {
	Name             string `json:"name" binding:"required"`
	PriceOere        int64  `json:"price"`
	Availability     int    `json:"availability"`
	MaxOrderQuantity int    `json:"maxOrderQuantity" binding:"required"`
}

func (r CreateOptionRequest) ToParams() commands.CreateOptionParams {
	return commands.CreateOptionParams{
		Name:             r.Name,
		PriceOere:        r.PriceOere,
		Availability:     r.Availability,
		MaxOrderQuantity: r.MaxOrderQuantity,
	}
}

type UpdateOptionRequest struct {
	Name             *string `json:"name,omitempty"`
	PriceOere        *int64  `json:"price,omitempty"`
	Availability     *int    `json:"availability,omitempty"`
	MaxOrderQuantity *int    `json:"maxOrderQuantity,omitempty"`
}

func (r UpdateOptionRequest) ToPatch() commands.OptionPatch {
	return commands.OptionPatch{
		Name:             r.Name,
		PriceOere:        r.PriceOere,
		Availability:     r.Availability,
		MaxOrderQuantity: r.MaxOrderQuantity,
	}
}
