//go:build unit

package order_test

import (
	"testing"
	"time"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/pkg/messages"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noon on a fixed day, UTC reference zone throughout
var testNow = time.Date(2024, time.March, 12, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *order.Engine {
	t.Helper()
	return order.NewEngine(time.UTC, messages.Danish())
}

func mustWindow(t *testing.T, fromH, fromM, toH, toM int) catalog.OrderWindow {
	t.Helper()
	from, err := catalog.NewWindowTime(fromH, fromM)
	require.NoError(t, err)
	to, err := catalog.NewWindowTime(toH, toM)
	require.NoError(t, err)
	w, err := catalog.NewOrderWindow(from, to)
	require.NoError(t, err)
	return w
}

func testProduct(t *testing.T, availability, maxQty int, window catalog.OrderWindow) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Frokostanretning", 4500, availability, maxQty, window)
	require.NoError(t, err)
	return p
}

func testOption(t *testing.T, availability, maxQty int) *catalog.Option {
	t.Helper()
	o, err := catalog.NewOption("Kaffe", 1500, availability, maxQty)
	require.NoError(t, err)
	return o
}

func testRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.NewRoom("Lokale 1.02", "")
	require.NoError(t, err)
	return r
}

type snapshotBuilder struct {
	snap order.Snapshot
}

func newSnapshot() *snapshotBuilder {
	return &snapshotBuilder{snap: order.Snapshot{
		Products: map[uuid.UUID]*catalog.Product{},
		Options:  map[uuid.UUID]*catalog.Option{},
	}}
}

func (b *snapshotBuilder) withRoom(r *room.Room) *snapshotBuilder {
	b.snap.Room = r
	return b
}

func (b *snapshotBuilder) withProduct(p *catalog.Product) *snapshotBuilder {
	b.snap.Products[p.ID()] = p
	return b
}

func (b *snapshotBuilder) withOption(o *catalog.Option) *snapshotBuilder {
	b.snap.Options[o.ID()] = o
	return b
}

func TestEvaluate_Accepts(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)

	r := testRoom(t)
	p := testProduct(t, 5, 3, wideOpen)

	draft := order.Draft{
		RequestedDeliveryDate: testNow,
		RoomID:                r.ID(),
		Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 2}},
	}
	snap := newSnapshot().withRoom(r).withProduct(p).snap

	validated, violations := engine.Evaluate(draft, snap, testNow)
	require.Empty(t, violations)
	require.NotNil(t, validated)
	assert.Equal(t, testNow, validated.ValidatedAt())
	assert.Equal(t, draft.RoomID, validated.Draft().RoomID)
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)

	r := testRoom(t)
	p := testProduct(t, 5, 3, wideOpen)
	draft := order.Draft{
		RequestedDeliveryDate: testNow,
		RoomID:                r.ID(),
		Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 2}},
	}
	snap := newSnapshot().withRoom(r).withProduct(p).snap

	first, firstViolations := engine.Evaluate(draft, snap, testNow)
	second, secondViolations := engine.Evaluate(draft, snap, testNow)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Empty(t, firstViolations)
	assert.Empty(t, secondViolations)
	assert.Equal(t, first.ValidatedAt(), second.ValidatedAt())
	// same stock after both passes: evaluation never touches the snapshot
	assert.Equal(t, 5, p.Availability())
}

func TestEvaluate_EmptyProducts(t *testing.T) {
	engine := newTestEngine(t)
	r := testRoom(t)

	draft := order.Draft{
		RequestedDeliveryDate: testNow,
		RoomID:                r.ID(),
	}
	snap := newSnapshot().withRoom(r).snap

	validated, violations := engine.Evaluate(draft, snap, testNow)
	require.Nil(t, validated)
	require.Len(t, violations, 1)
	assert.Equal(t, order.KindProductsEmpty, violations[0].Kind)
	assert.Equal(t, "products", violations[0].Field)
	assert.Equal(t, "Mindst et produkt er påkrævet", violations[0].Message)
}

func TestEvaluate_DeliveryDateRules(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)
	r := testRoom(t)
	p := testProduct(t, 5, 3, wideOpen)

	tests := []struct {
		name      string
		date      time.Time
		wantKinds []order.ViolationKind
	}{
		{
			name: "today passes",
			date: testNow.Add(2 * time.Hour),
		},
		{
			name:      "yesterday violates both date rules",
			date:      testNow.AddDate(0, 0, -1),
			wantKinds: []order.ViolationKind{order.KindDeliveryDateInPast, order.KindDeliveryDateNotToday},
		},
		{
			name:      "tomorrow violates only the today rule",
			date:      testNow.AddDate(0, 0, 1),
			wantKinds: []order.ViolationKind{order.KindDeliveryDateNotToday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := order.Draft{
				RequestedDeliveryDate: tt.date,
				RoomID:                r.ID(),
				Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
			}
			snap := newSnapshot().withRoom(r).withProduct(p).snap

			validated, violations := engine.Evaluate(draft, snap, testNow)
			if len(tt.wantKinds) == 0 {
				require.NotNil(t, validated)
				assert.Empty(t, violations)
				return
			}
			require.Nil(t, validated)
			if diff := cmp.Diff(tt.wantKinds, violations.Kinds()); diff != "" {
				t.Errorf("violation kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_DeliveryDateInBehindUTCZone(t *testing.T) {
	// A reference zone behind UTC must not shift a bare calendar date
	// (decoded as UTC midnight) to the previous day.
	zone := time.FixedZone("UTC-6", -6*3600)
	engine := order.NewEngine(zone, messages.Danish())
	wideOpen := mustWindow(t, 0, 0, 23, 59)
	r := testRoom(t)
	p := testProduct(t, 5, 3, wideOpen)

	// 02:00 UTC on the 13th is still the evening of the 12th in the zone.
	now := time.Date(2024, time.March, 13, 2, 0, 0, 0, time.UTC)
	bareDate := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	draft := order.Draft{
		RequestedDeliveryDate: bareDate,
		RoomID:                r.ID(),
		Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
	}
	snap := newSnapshot().withRoom(r).withProduct(p).snap

	validated, violations := engine.Evaluate(draft, snap, now)
	assert.Empty(t, violations)
	require.NotNil(t, validated)

	// The day after the zone's today is still not today.
	draft.RequestedDeliveryDate = bareDate.AddDate(0, 0, 1)
	validated, violations = engine.Evaluate(draft, snap, now)
	require.Nil(t, validated)
	assert.True(t, violations.HasKind(order.KindDeliveryDateNotToday))
	assert.False(t, violations.HasKind(order.KindDeliveryDateInPast))
}

func TestEvaluate_QuantityBounds(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)
	r := testRoom(t)

	t.Run("quantity over availability flags exactly that line", func(t *testing.T) {
		scarce := testProduct(t, 1, 3, wideOpen)
		plenty := testProduct(t, 10, 5, wideOpen)

		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products: []order.ProductLine{
				{ProductID: plenty.ID(), Quantity: 2},
				{ProductID: scarce.ID(), Quantity: 2},
			},
		}
		snap := newSnapshot().withRoom(r).withProduct(scarce).withProduct(plenty).snap

		validated, violations := engine.Evaluate(draft, snap, testNow)
		require.Nil(t, validated)
		require.Len(t, violations, 1)
		assert.Equal(t, order.KindProductQtyOverStock, violations[0].Kind)
		assert.Equal(t, "products[1].quantity", violations[0].Field)
		assert.Equal(t, "Kan ikke bestille flere produkter end der er til rådighed", violations[0].Message)
	})

	t.Run("quantity over max per order", func(t *testing.T) {
		p := testProduct(t, 10, 3, wideOpen)
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 4}},
		}
		snap := newSnapshot().withRoom(r).withProduct(p).snap

		_, violations := engine.Evaluate(draft, snap, testNow)
		require.Len(t, violations, 1)
		assert.Equal(t, order.KindProductQtyOverMax, violations[0].Kind)
	})

	t.Run("quantity at both bounds passes", func(t *testing.T) {
		p := testProduct(t, 3, 3, wideOpen)
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 3}},
		}
		snap := newSnapshot().withRoom(r).withProduct(p).snap

		validated, violations := engine.Evaluate(draft, snap, testNow)
		assert.Empty(t, violations)
		assert.NotNil(t, validated)
	})

	t.Run("zero and negative quantity", func(t *testing.T) {
		p := testProduct(t, 5, 3, wideOpen)
		for _, qty := range []int{0, -1} {
			draft := order.Draft{
				RequestedDeliveryDate: testNow,
				RoomID:                r.ID(),
				Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: qty}},
			}
			snap := newSnapshot().withRoom(r).withProduct(p).snap

			_, violations := engine.Evaluate(draft, snap, testNow)
			assert.True(t, violations.HasKind(order.KindProductQtyNotPositive), "qty %d", qty)
		}
	})
}

func TestEvaluate_DuplicateProducts(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)
	r := testRoom(t)
	p := testProduct(t, 10, 5, wideOpen)

	draft := order.Draft{
		RequestedDeliveryDate: testNow,
		RoomID:                r.ID(),
		Products: []order.ProductLine{
			{ProductID: p.ID(), Quantity: 1},
			{ProductID: p.ID(), Quantity: 2},
		},
	}
	snap := newSnapshot().withRoom(r).withProduct(p).snap

	validated, violations := engine.Evaluate(draft, snap, testNow)
	require.Nil(t, validated)

	// reported once for the list, independent of quantities
	count := 0
	for _, v := range violations {
		if v.Kind == order.KindProductsNotUnique {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "products", violations[0].Field)
}

func TestEvaluate_OrderWindowBoundaries(t *testing.T) {
	engine := newTestEngine(t)
	r := testRoom(t)
	window := mustWindow(t, 8, 30, 14, 15)
	p := testProduct(t, 5, 3, window)

	tests := []struct {
		name string
		now  time.Time
		pass bool
	}{
		{"exactly at window open", time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC), true},
		{"one minute before open", time.Date(2024, 3, 12, 8, 29, 0, 0, time.UTC), false},
		{"exactly at window close", time.Date(2024, 3, 12, 14, 15, 0, 0, time.UTC), true},
		{"one minute after close", time.Date(2024, 3, 12, 14, 16, 0, 0, time.UTC), false},
		{"mid window", time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC), true},
		{"late evening", time.Date(2024, 3, 12, 22, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := order.Draft{
				RequestedDeliveryDate: tt.now,
				RoomID:                r.ID(),
				Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
			}
			snap := newSnapshot().withRoom(r).withProduct(p).snap

			validated, violations := engine.Evaluate(draft, snap, tt.now)
			if tt.pass {
				require.NotNil(t, validated, "violations: %v", violations)
				assert.Empty(t, violations)
			} else {
				require.Nil(t, validated)
				require.Len(t, violations, 1)
				assert.Equal(t, order.KindProductOutsideWindow, violations[0].Kind)
				assert.Equal(t, "products[0].productId", violations[0].Field)
			}
		})
	}
}

func TestEvaluate_ReferenceZone(t *testing.T) {
	copenhagen, err := time.LoadLocation("Europe/Copenhagen")
	require.NoError(t, err)
	engine := order.NewEngine(copenhagen, messages.Danish())

	r := testRoom(t)
	// window 08:00-10:00 Copenhagen; 07:30 UTC is 08:30 or 09:30 local
	// depending on DST, inside the window either way
	window := mustWindow(t, 8, 0, 10, 0)
	p := testProduct(t, 5, 3, window)

	now := time.Date(2024, time.March, 12, 7, 30, 0, 0, time.UTC)
	draft := order.Draft{
		RequestedDeliveryDate: now,
		RoomID:                r.ID(),
		Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
	}
	snap := newSnapshot().withRoom(r).withProduct(p).snap

	validated, violations := engine.Evaluate(draft, snap, now)
	require.NotNil(t, validated, "violations: %v", violations)
}

func TestEvaluate_UnknownReferences(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)
	r := testRoom(t)
	p := testProduct(t, 5, 3, wideOpen)

	t.Run("unknown room", func(t *testing.T) {
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                uuid.New(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
		}
		snap := newSnapshot().withProduct(p).snap

		_, violations := engine.Evaluate(draft, snap, testNow)
		require.Len(t, violations, 1)
		assert.Equal(t, order.KindRoomNotFound, violations[0].Kind)
		assert.Equal(t, "roomId", violations[0].Field)
		assert.Equal(t, "Rummet eksisterer ikke", violations[0].Message)
	})

	t.Run("unknown product", func(t *testing.T) {
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: uuid.New(), Quantity: 1}},
		}
		snap := newSnapshot().withRoom(r).snap

		_, violations := engine.Evaluate(draft, snap, testNow)
		require.Len(t, violations, 1)
		assert.Equal(t, order.KindProductNotFound, violations[0].Kind)
		assert.Equal(t, "products[0].productId", violations[0].Field)
	})

	t.Run("unknown option", func(t *testing.T) {
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
			Options:               []order.OptionLine{{OptionID: uuid.New(), Quantity: 1}},
		}
		snap := newSnapshot().withRoom(r).withProduct(p).snap

		_, violations := engine.Evaluate(draft, snap, testNow)
		require.Len(t, violations, 1)
		assert.Equal(t, order.KindOptionNotFound, violations[0].Kind)
		assert.Equal(t, "options[0].optionId", violations[0].Field)
	})
}

func TestEvaluate_OptionRules(t *testing.T) {
	engine := newTestEngine(t)
	wideOpen := mustWindow(t, 0, 0, 23, 59)
	r := testRoom(t)
	p := testProduct(t, 5, 3, wideOpen)

	t.Run("valid options pass", func(t *testing.T) {
		opt := testOption(t, 10, 4)
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
			Options:               []order.OptionLine{{OptionID: opt.ID(), Quantity: 2}},
		}
		snap := newSnapshot().withRoom(r).withProduct(p).withOption(opt).snap

		validated, violations := engine.Evaluate(draft, snap, testNow)
		assert.Empty(t, violations)
		assert.NotNil(t, validated)
	})

	t.Run("option quantity bounds", func(t *testing.T) {
		opt := testOption(t, 1, 5)
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
			Options:               []order.OptionLine{{OptionID: opt.ID(), Quantity: 3}},
		}
		snap := newSnapshot().withRoom(r).withProduct(p).withOption(opt).snap

		_, violations := engine.Evaluate(draft, snap, testNow)
		require.Len(t, violations, 1)
		assert.Equal(t, order.KindOptionQtyOverStock, violations[0].Kind)
		assert.Equal(t, "options[0].quantity", violations[0].Field)
	})

	t.Run("duplicate options reported once", func(t *testing.T) {
		opt := testOption(t, 10, 5)
		draft := order.Draft{
			RequestedDeliveryDate: testNow,
			RoomID:                r.ID(),
			Products:              []order.ProductLine{{ProductID: p.ID(), Quantity: 1}},
			Options: []order.OptionLine{
				{OptionID: opt.ID(), Quantity: 1},
				{OptionID: opt.ID(), Quantity: 2},
			},
		}
		snap := newSnapshot().withRoom(r).withProduct(p).withOption(opt).snap

		_, violations := engine.Evaluate(draft, snap, testNow)
		count := 0
		for _, v := range violations {
			if v.Kind == order.KindOptionsNotUnique {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestEvaluate_CollectsAllViolations(t *testing.T) {
	engine := newTestEngine(t)
	// window already closed at testNow
	morning := mustWindow(t, 6, 0, 9, 0)
	scarce := testProduct(t, 1, 2, morning)

	draft := order.Draft{
		RequestedDeliveryDate: testNow.AddDate(0, 0, -1),
		RoomID:                uuid.New(),
		Products:              []order.ProductLine{{ProductID: scarce.ID(), Quantity: 5}},
	}
	snap := newSnapshot().withProduct(scarce).snap

	validated, violations := engine.Evaluate(draft, snap, testNow)
	require.Nil(t, validated)

	want := []order.ViolationKind{
		order.KindDeliveryDateInPast,
		order.KindDeliveryDateNotToday,
		order.KindRoomNotFound,
		order.KindProductQtyOverStock,
		order.KindProductQtyOverMax,
		order.KindProductOutsideWindow,
	}
	if diff := cmp.Diff(want, violations.Kinds()); diff != "" {
		t.Errorf("violation kinds mismatch (-want +got):\n%s", diff)
	}
}
