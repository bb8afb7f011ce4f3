package order

import (
	"time"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/room"

	"github.com/google/uuid"
)

// ProductLine is one (product, quantity) pair of a draft.
type ProductLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// OptionLine is one (option, quantity) pair of a draft.
type OptionLine struct {
	OptionID uuid.UUID
	Quantity int
}

// Draft is an unvalidated proposed order as submitted by a caller.
type Draft struct {
	RequestedDeliveryDate time.Time
	RoomID                uuid.UUID
	Products              []ProductLine
	Options               []OptionLine
}

// Snapshot is the catalog state one evaluation runs against. Referenced ids
// absent from the catalog are represented by a nil Room or a missing map
// entry; the engine turns absence into not-found violations.
type Snapshot struct {
	Room     *room.Room
	Products map[uuid.UUID]*catalog.Product
	Options  map[uuid.UUID]*catalog.Option
}

// Validated is a draft that passed every admissibility rule, stamped with the
// evaluation instant. It is not yet durably stored.
type Validated struct {
	draft       Draft
	validatedAt time.Time
}

func (v *Validated) Draft() Draft           { return v.draft }
func (v *Validated) ValidatedAt() time.Time { return v.validatedAt }
