package order

import (
	"fmt"
	"strings"
)

// ViolationKind is a stable identifier for one admissibility rule. The
// identifiers are part of the API contract; messages are looked up per locale.
type ViolationKind string

const (
	KindDeliveryDateInPast     ViolationKind = "DELIVERY_DATE_IN_PAST"
	KindDeliveryDateNotToday   ViolationKind = "DELIVERY_DATE_NOT_TODAY"
	KindRoomNotFound           ViolationKind = "ROOM_NOT_FOUND"
	KindProductsEmpty          ViolationKind = "PRODUCTS_EMPTY"
	KindProductsNotUnique      ViolationKind = "PRODUCTS_NOT_UNIQUE"
	KindProductNotFound        ViolationKind = "PRODUCT_NOT_FOUND"
	KindProductQtyNotPositive  ViolationKind = "PRODUCT_QUANTITY_NOT_POSITIVE"
	KindProductQtyOverStock    ViolationKind = "PRODUCT_QUANTITY_OVER_AVAILABILITY"
	KindProductQtyOverMax      ViolationKind = "PRODUCT_QUANTITY_OVER_MAX"
	KindProductOutsideWindow   ViolationKind = "PRODUCT_OUTSIDE_ORDER_WINDOW"
	KindOptionsNotUnique       ViolationKind = "OPTIONS_NOT_UNIQUE"
	KindOptionNotFound         ViolationKind = "OPTION_NOT_FOUND"
	KindOptionQtyNotPositive   ViolationKind = "OPTION_QUANTITY_NOT_POSITIVE"
	KindOptionQtyOverStock     ViolationKind = "OPTION_QUANTITY_OVER_AVAILABILITY"
	KindOptionQtyOverMax       ViolationKind = "OPTION_QUANTITY_OVER_MAX"
)

// Violation is one failed admissibility rule: which field, which rule, and
// the localized reason.
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

type Violations []Violation

func (vs Violations) HasKind(kind ViolationKind) bool {
	for _, v := range vs {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

func (vs Violations) Kinds() []ViolationKind {
	kinds := make([]ViolationKind, len(vs))
	for i, v := range vs {
		kinds[i] = v.Kind
	}
	return kinds
}

// ValidationError carries the complete violation set of one evaluation so
// callers can report every failed rule in a single round trip.
type ValidationError struct {
	Violations Violations
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "order validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Kind)
	}
	return "order validation failed: " + strings.Join(parts, "; ")
}
