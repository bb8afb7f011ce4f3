//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/infra/memory"
	"kantine-order-api/internal/pkg/clock"
	"kantine-order-api/internal/pkg/messages"
	"kantine-order-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 12, 12, 0, 0, 0, time.UTC)

type orderFixture struct {
	clock    *clock.MockClock
	store    *memory.Store
	commands commands.OrderCommands
	room     *room.Room
	product  *catalog.Product
	option   *catalog.Option
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	clk := clock.NewMockClock(testNow)
	store := memory.NewStore(clk)
	engine := order.NewEngine(time.UTC, messages.Danish())

	f := &orderFixture{
		clock: clk,
		store: store,
		commands: commands.NewOrderCommands(
			store.Orders(), store.Rooms(), store.Products(), store.Options(), engine, clk,
		),
	}

	ctx := context.Background()

	r, err := room.NewRoom("Lokale 2.14", "")
	require.NoError(t, err)
	require.NoError(t, store.Rooms().Insert(ctx, r))
	f.room = r

	window := mustWindow(t, 0, 0, 23, 59)
	p, err := catalog.NewProduct("Frokostanretning", 4500, 5, 3, window)
	require.NoError(t, err)
	require.NoError(t, store.Products().Insert(ctx, p))
	f.product = p

	o, err := catalog.NewOption("Kaffe", 1500, 10, 4)
	require.NoError(t, err)
	require.NoError(t, store.Options().Insert(ctx, o))
	f.option = o

	return f
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

func (f *orderFixture) validDraft() order.Draft {
	return order.Draft{
		RequestedDeliveryDate: testNow,
		RoomID:                f.room.ID(),
		Products:              []order.ProductLine{{ProductID: f.product.ID(), Quantity: 2}},
		Options:               []order.OptionLine{{OptionID: f.option.ID(), Quantity: 1}},
	}
}

func TestOrderCommands_Create(t *testing.T) {
	t.Run("admits and persists a valid draft", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		created, err := f.commands.Create(ctx, f.validDraft())
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEqual(t, uuid.Nil, created.ID())
		assert.Equal(t, f.room.ID(), created.RoomID())
		assert.False(t, created.CreatedAt().IsZero())

		stored, err := f.store.Orders().FindByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.Products(), stored.Products())
	})

	t.Run("rejects and reports every violation at once", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		draft := f.validDraft()
		draft.RequestedDeliveryDate = testNow.AddDate(0, 0, -1)
		draft.Products = []order.ProductLine{
			{ProductID: f.product.ID(), Quantity: 9},
			{ProductID: uuid.New(), Quantity: 1},
		}

		created, err := f.commands.Create(ctx, draft)
		require.Error(t, err)
		assert.Nil(t, created)

		var validationErr *order.ValidationError
		require.True(t, errors.As(err, &validationErr))

		kinds := validationErr.Violations.Kinds()
		assert.Contains(t, kinds, order.KindDeliveryDateInPast)
		assert.Contains(t, kinds, order.KindDeliveryDateNotToday)
		assert.Contains(t, kinds, order.KindProductQtyOverStock)
		assert.Contains(t, kinds, order.KindProductQtyOverMax)
		assert.Contains(t, kinds, order.KindProductNotFound)

		orders, err := f.store.Orders().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders, "a rejected order must not be persisted")
	})

	t.Run("unknown room is a violation, not a store fault", func(t *testing.T) {
		f := newOrderFixture(t)

		draft := f.validDraft()
		draft.RoomID = uuid.New()

		_, err := f.commands.Create(context.Background(), draft)
		var validationErr *order.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.True(t, validationErr.Violations.HasKind(order.KindRoomNotFound))
	})

	t.Run("empty product list is the only violation reported for it", func(t *testing.T) {
		f := newOrderFixture(t)

		draft := f.validDraft()
		draft.Products = nil
		draft.Options = nil

		_, err := f.commands.Create(context.Background(), draft)
		var validationErr *order.ValidationError
		require.True(t, errors.As(err, &validationErr))
		require.Len(t, validationErr.Violations, 1)
		assert.Equal(t, order.KindProductsEmpty, validationErr.Violations[0].Kind)
		assert.Equal(t, "Mindst et produkt er påkrævet", validationErr.Violations[0].Message)
	})

	t.Run("window closes between requests", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		narrow, err := f.product.Apply("Frokostanretning", 4500, 5, 3, mustWindow(t, 8, 30, 11, 0))
		require.NoError(t, err)
		require.NoError(t, f.store.Products().Update(ctx, narrow))

		_, err = f.commands.Create(ctx, f.validDraft())
		var validationErr *order.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.True(t, validationErr.Violations.HasKind(order.KindProductOutsideWindow))

		f.clock.Set(time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC))
		created, err := f.commands.Create(ctx, f.validDraft())
		require.NoError(t, err)
		assert.NotNil(t, created)
	})
}

func TestOrderCommands_Update(t *testing.T) {
	t.Run("merges the patch and re-validates the whole candidate", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		created, err := f.commands.Create(ctx, f.validDraft())
		require.NoError(t, err)

		newLines := []order.ProductLine{{ProductID: f.product.ID(), Quantity: 3}}
		updated, err := f.commands.Update(ctx, created.ID(), commands.OrderPatch{Products: newLines})
		require.NoError(t, err)

		assert.Equal(t, created.ID(), updated.ID())
		assert.Equal(t, newLines, updated.Products())
		assert.Equal(t, created.Options(), updated.Options(), "unpatched fields are kept")
	})

	t.Run("a single violation rejects the entire update", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		created, err := f.commands.Create(ctx, f.validDraft())
		require.NoError(t, err)

		overMax := []order.ProductLine{{ProductID: f.product.ID(), Quantity: 4}}
		_, err = f.commands.Update(ctx, created.ID(), commands.OrderPatch{Products: overMax})

		var validationErr *order.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.True(t, validationErr.Violations.HasKind(order.KindProductQtyOverMax))

		stored, err := f.store.Orders().FindByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.Products(), stored.Products(), "rejected update must not change storage")
	})

	t.Run("unknown order id", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.commands.Update(context.Background(), uuid.New(), commands.OrderPatch{})
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}

func TestOrderCommands_Delete(t *testing.T) {
	t.Run("requires explicit confirmation before touching storage", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		created, err := f.commands.Create(ctx, f.validDraft())
		require.NoError(t, err)

		err = f.commands.Delete(ctx, created.ID(), false)
		assert.ErrorIs(t, err, commands.ErrConfirmationRequired)

		_, err = f.store.Orders().FindByID(ctx, created.ID())
		require.NoError(t, err, "unconfirmed delete must leave the order in place")
	})

	t.Run("confirmed delete removes the order", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		created, err := f.commands.Create(ctx, f.validDraft())
		require.NoError(t, err)

		require.NoError(t, f.commands.Delete(ctx, created.ID(), true))

		_, err = f.store.Orders().FindByID(ctx, created.ID())
		assert.Error(t, err)
	})

	t.Run("confirmation is checked before existence", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.commands.Delete(context.Background(), uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrConfirmationRequired)
	})

	t.Run("unknown order id with confirmation", func(t *testing.T) {
		f := newOrderFixture(t)

		err := f.commands.Delete(context.Background(), uuid.New(), true)
		assert.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}
