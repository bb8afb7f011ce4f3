//go:build unit

package order_test

import (
	"testing"
	"time"

	"kantine-order-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransition(t *testing.T) {
	t.Run("accepted path", func(t *testing.T) {
		s := order.StatusDraft
		for _, next := range []order.Status{
			order.StatusValidating, order.StatusAccepted, order.StatusPersisted, order.StatusDeleted,
		} {
			var err error
			s, err = s.Transition(next)
			require.NoError(t, err)
			assert.Equal(t, next, s)
		}
		assert.True(t, s.Terminal())
	})

	t.Run("rejected path", func(t *testing.T) {
		s, err := order.StatusValidating.Transition(order.StatusRejected)
		require.NoError(t, err)
		assert.True(t, s.Terminal())

		_, err = s.Transition(order.StatusAccepted)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("skipping validation is not allowed", func(t *testing.T) {
		s, err := order.StatusDraft.Transition(order.StatusAccepted)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusDraft, s, "failed transition keeps the current status")
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, order.StatusDraft.Terminal())
		assert.False(t, order.StatusValidating.Terminal())
		assert.False(t, order.StatusAccepted.Terminal())
		assert.False(t, order.StatusPersisted.Terminal())
		assert.True(t, order.StatusRejected.Terminal())
		assert.True(t, order.StatusDeleted.Terminal())
	})
}

func TestOrderToDraft(t *testing.T) {
	deliveryDate := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	roomID := uuid.New()
	products := []order.ProductLine{{ProductID: uuid.New(), Quantity: 2}}
	options := []order.OptionLine{{OptionID: uuid.New(), Quantity: 1}}

	entity := order.Reconstruct(uuid.New(), deliveryDate, roomID, products, options, time.Now(), time.Now())

	draft := entity.ToDraft()
	assert.Equal(t, deliveryDate, draft.RequestedDeliveryDate)
	assert.Equal(t, roomID, draft.RoomID)
	assert.Equal(t, products, draft.Products)
	assert.Equal(t, options, draft.Options)
}
