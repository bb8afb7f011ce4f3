package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option is an add-on catalog entry. It carries stock and a per-order cap
// like a product but no order window: add-ons are orderable all day.
type Option struct {
	id               uuid.UUID
	name             string
	priceOere        int64
	availability     int
	maxOrderQuantity int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewOption(name string, priceOere int64, availability, maxOrderQuantity int) (*Option, error) {
	name = strings.TrimSpace(name)
	if err := validateCatalogEntry(name, priceOere, availability, maxOrderQuantity); err != nil {
		return nil, err
	}

	return &Option{
		id:               uuid.New(),
		name:             name,
		priceOere:        priceOere,
		availability:     availability,
		maxOrderQuantity: maxOrderQuantity,
	}, nil
}

func ReconstructOption(
	id uuid.UUID,
	name string,
	priceOere int64,
	availability, maxOrderQuantity int,
	createdAt, updatedAt time.Time,
) *Option {
	return &Option{
		id:               id,
		name:             name,
		priceOere:        priceOere,
		availability:     availability,
		maxOrderQuantity: maxOrderQuantity,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Apply returns a copy with the given field values after validation,
// keeping identity and creation time.
func (o *Option) Apply(name string, priceOere int64, availability, maxOrderQuantity int) (*Option, error) {
	name = strings.TrimSpace(name)
	if err := validateCatalogEntry(name, priceOere, availability, maxOrderQuantity); err != nil {
		return nil, err
	}

	updated := *o
	updated.name = name
	updated.priceOere = priceOere
	updated.availability = availability
	updated.maxOrderQuantity = maxOrderQuantity
	return &updated, nil
}

func (o *Option) ID() uuid.UUID         { return o.id }
func (o *Option) Name() string          { return o.name }
func (o *Option) PriceOere() int64      { return o.priceOere }
func (o *Option) Availability() int     { return o.availability }
func (o *Option) MaxOrderQuantity() int { return o.maxOrderQuantity }
func (o *Option) CreatedAt() time.Time  { return o.createdAt }
func (o *Option) UpdatedAt() time.Time  { return o.updatedAt }
