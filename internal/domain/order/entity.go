package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// Status tracks an order through its lifecycle. Rejected, Persisted and
// Deleted are terminal.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusValidating Status = "validating"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusPersisted  Status = "persisted"
	StatusDeleted    Status = "deleted"
)

var transitions = map[Status][]Status{
	StatusDraft:      {StatusValidating},
	StatusValidating: {StatusAccepted, StatusRejected},
	StatusAccepted:   {StatusPersisted},
	StatusPersisted:  {StatusDeleted},
}

// Transition returns the next status or ErrInvalidTransition if the move is
// not allowed by the lifecycle.
func (s Status) Transition(next Status) (Status, error) {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, ErrInvalidTransition
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Order is the persisted aggregate. It only ever comes into existence from a
// Validated draft or from storage.
type Order struct {
	id                    uuid.UUID
	requestedDeliveryDate time.Time
	roomID                uuid.UUID
	products              []ProductLine
	options               []OptionLine
	createdAt             time.Time
	updatedAt             time.Time
}

// NewFromValidated assigns an identity to a validated draft.
func NewFromValidated(v *Validated) *Order {
	d := v.Draft()
	return &Order{
		id:                    uuid.New(),
		requestedDeliveryDate: d.RequestedDeliveryDate,
		roomID:                d.RoomID,
		products:              append([]ProductLine(nil), d.Products...),
		options:               append([]OptionLine(nil), d.Options...),
	}
}

func Reconstruct(
	id uuid.UUID,
	requestedDeliveryDate time.Time,
	roomID uuid.UUID,
	products []ProductLine,
	options []OptionLine,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:                    id,
		requestedDeliveryDate: requestedDeliveryDate,
		roomID:                roomID,
		products:              products,
		options:               options,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// ToDraft re-projects the stored order as a draft, used when an update has to
// re-run the full admission check on the merged candidate.
func (o *Order) ToDraft() Draft {
	return Draft{
		RequestedDeliveryDate: o.requestedDeliveryDate,
		RoomID:                o.roomID,
		Products:              append([]ProductLine(nil), o.products...),
		Options:               append([]OptionLine(nil), o.options...),
	}
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) RequestedDeliveryDate() time.Time { return o.requestedDeliveryDate }
func (o *Order) RoomID() uuid.UUID                { return o.roomID }
func (o *Order) Products() []ProductLine          { return o.products }
func (o *Order) Options() []OptionLine            { return o.options }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
