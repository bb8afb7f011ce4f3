package order

import (
	"fmt"
	"time"

	"kantine-order-api/internal/pkg/messages"

	"github.com/google/uuid"
)

// Engine evaluates a draft against a catalog snapshot and an explicit
// evaluation instant. Every applicable rule runs and all violations are
// collected; the engine never short-circuits, mutates the snapshot, or reads
// the ambient clock. Concurrent evaluations are therefore independent.
type Engine struct {
	zone *time.Location
	msgs *messages.Catalog
}

// NewEngine builds an engine with the reference zone for all date and
// order-window comparisons and the message catalog used to word violations.
func NewEngine(zone *time.Location, msgs *messages.Catalog) *Engine {
	return &Engine{zone: zone, msgs: msgs}
}

// Evaluate returns a Validated order when every rule passes, otherwise the
// complete ordered violation set. Violations are ordered deterministically:
// date, room, product list rules, product lines in draft order, option list
// rules, option lines in draft order.
func (e *Engine) Evaluate(draft Draft, snap Snapshot, now time.Time) (*Validated, Violations) {
	var vs Violations

	vs = append(vs, e.checkDeliveryDate(draft.RequestedDeliveryDate, now)...)

	if snap.Room == nil {
		vs = append(vs, e.violation("roomId", KindRoomNotFound))
	}

	vs = append(vs, e.checkProducts(draft.Products, snap, now)...)
	vs = append(vs, e.checkOptions(draft.Options, snap)...)

	if len(vs) > 0 {
		return nil, vs
	}
	return &Validated{draft: draft, validatedAt: now}, nil
}

// checkDeliveryDate applies both date rules independently: a date in the past
// violates both; a future date only violates the today rule. The requested
// value is a calendar date as the client wrote it (a bare date parses to
// midnight in whatever zone the decoder picked), so its own date components
// are compared against today in the reference zone instead of converting the
// instant, which would shift the date in zones behind the decoder's.
func (e *Engine) checkDeliveryDate(requested, now time.Time) Violations {
	var vs Violations

	today := dateOf(now.In(e.zone))
	delivery := dateOf(requested)

	if delivery.Before(today) {
		vs = append(vs, e.violation("requestedDeliveryDate", KindDeliveryDateInPast))
	}
	if !delivery.Equal(today) {
		vs = append(vs, e.violation("requestedDeliveryDate", KindDeliveryDateNotToday))
	}
	return vs
}

func (e *Engine) checkProducts(lines []ProductLine, snap Snapshot, now time.Time) Violations {
	var vs Violations

	if len(lines) == 0 {
		vs = append(vs, e.violation("products", KindProductsEmpty))
		return vs
	}
	if hasDuplicates(productIDs(lines)) {
		vs = append(vs, e.violation("products", KindProductsNotUnique))
	}

	local := now.In(e.zone)
	for i, line := range lines {
		if line.Quantity < 1 {
			vs = append(vs, e.violation(fmt.Sprintf("products[%d].quantity", i), KindProductQtyNotPositive))
		}

		product, ok := snap.Products[line.ProductID]
		if !ok || product == nil {
			vs = append(vs, e.violation(fmt.Sprintf("products[%d].productId", i), KindProductNotFound))
			continue
		}

		if line.Quantity > product.Availability() {
			vs = append(vs, e.violation(fmt.Sprintf("products[%d].quantity", i), KindProductQtyOverStock))
		}
		if line.Quantity > product.MaxOrderQuantity() {
			vs = append(vs, e.violation(fmt.Sprintf("products[%d].quantity", i), KindProductQtyOverMax))
		}
		if !product.OrderWindow().Contains(local) {
			vs = append(vs, e.violation(fmt.Sprintf("products[%d].productId", i), KindProductOutsideWindow))
		}
	}
	return vs
}

func (e *Engine) checkOptions(lines []OptionLine, snap Snapshot) Violations {
	var vs Violations

	if len(lines) == 0 {
		return nil
	}
	if hasDuplicates(optionIDs(lines)) {
		vs = append(vs, e.violation("options", KindOptionsNotUnique))
	}

	for i, line := range lines {
		if line.Quantity < 1 {
			vs = append(vs, e.violation(fmt.Sprintf("options[%d].quantity", i), KindOptionQtyNotPositive))
		}

		option, ok := snap.Options[line.OptionID]
		if !ok || option == nil {
			vs = append(vs, e.violation(fmt.Sprintf("options[%d].optionId", i), KindOptionNotFound))
			continue
		}

		if line.Quantity > option.Availability() {
			vs = append(vs, e.violation(fmt.Sprintf("options[%d].quantity", i), KindOptionQtyOverStock))
		}
		if line.Quantity > option.MaxOrderQuantity() {
			vs = append(vs, e.violation(fmt.Sprintf("options[%d].quantity", i), KindOptionQtyOverMax))
		}
	}
	return vs
}

func (e *Engine) violation(field string, kind ViolationKind) Violation {
	return Violation{
		Field:   field,
		Kind:    kind,
		Message: e.msgs.Resolve(string(kind)),
	}
}

// dateOf truncates t to its calendar date as displayed in t's own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func productIDs(lines []ProductLine) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.ProductID
	}
	return ids
}

func optionIDs(lines []OptionLine) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.OptionID
	}
	return ids
}

func hasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
