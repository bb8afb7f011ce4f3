package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName       = errors.New("product name cannot be empty")
	ErrProductNameTooLong     = errors.New("product name is too long (max 100 characters)")
	ErrNegativePrice          = errors.New("price cannot be negative")
	ErrNegativeAvailability   = errors.New("availability cannot be negative")
	ErrNonPositiveMaxQuantity = errors.New("max order quantity must be positive")
)

const MaxCatalogNameLength = 100

// Product is a catalog entry the admission engine reads: stock on hand, a
// per-order cap, and the daily window during which it may be ordered.
type Product struct {
	id               uuid.UUID
	name             string
	priceOere        int64
	availability     int
	maxOrderQuantity int
	orderWindow      OrderWindow
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProduct(name string, priceOere int64, availability, maxOrderQuantity int, window OrderWindow) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateCatalogEntry(name, priceOere, availability, maxOrderQuantity); err != nil {
		return nil, err
	}

	return &Product{
		id:               uuid.New(),
		name:             name,
		priceOere:        priceOere,
		availability:     availability,
		maxOrderQuantity: maxOrderQuantity,
		orderWindow:      window,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	priceOere int64,
	availability, maxOrderQuantity int,
	window OrderWindow,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:               id,
		name:             name,
		priceOere:        priceOere,
		availability:     availability,
		maxOrderQuantity: maxOrderQuantity,
		orderWindow:      window,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Apply returns a copy with the given field values after validation,
// keeping identity and creation time.
func (p *Product) Apply(name string, priceOere int64, availability, maxOrderQuantity int, window OrderWindow) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateCatalogEntry(name, priceOere, availability, maxOrderQuantity); err != nil {
		return nil, err
	}

	updated := *p
	updated.name = name
	updated.priceOere = priceOere
	updated.availability = availability
	updated.maxOrderQuantity = maxOrderQuantity
	updated.orderWindow = window
	return &updated, nil
}

func (p *Product) ID() uuid.UUID            { return p.id }
func (p *Product) Name() string             { return p.name }
func (p *Product) PriceOere() int64         { return p.priceOere }
func (p *Product) Availability() int        { return p.availability }
func (p *Product) MaxOrderQuantity() int    { return p.maxOrderQuantity }
func (p *Product) OrderWindow() OrderWindow { return p.orderWindow }
func (p *Product) CreatedAt() time.Time     { return p.createdAt }
func (p *Product) UpdatedAt() time.Time     { return p.updatedAt }

func validateCatalogEntry(name string, priceOere int64, availability, maxOrderQuantity int) error {
	if name == "" {
		return ErrEmptyProductName
	}
	if len(name) > MaxCatalogNameLength {
		return ErrProductNameTooLong
	}
	if priceOere < 0 {
		return ErrNegativePrice
	}
	if availability < 0 {
		return ErrNegativeAvailability
	}
	if maxOrderQuantity < 1 {
		return ErrNonPositiveMaxQuantity
	}
	return nil
}
