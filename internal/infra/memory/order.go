package memory

import (
	"context"
	"sort"

	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/infra"

	"github.com/google/uuid"
)

type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Insert(ctx context.Context, entity *order.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[entity.RoomID()]; !ok {
		return infra.WrapRepoErr("order references missing room", nil, infra.KindForeignKeyViolated)
	}
	for _, line := range entity.Products() {
		if _, ok := s.products[line.ProductID]; !ok {
			return infra.WrapRepoErr("order line references missing product", nil, infra.KindForeignKeyViolated)
		}
	}
	for _, line := range entity.Options() {
		if _, ok := s.options[line.OptionID]; !ok {
			return infra.WrapRepoErr("order line references missing option", nil, infra.KindForeignKeyViolated)
		}
	}

	now := s.clock.Now()
	s.orders[entity.ID()] = order.Reconstruct(
		entity.ID(), entity.RequestedDeliveryDate(), entity.RoomID(),
		entity.Products(), entity.Options(),
		now, now,
	)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return entity, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, 0, len(s.orders))
	for _, entity := range s.orders {
		result = append(result, entity)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].RequestedDeliveryDate().Equal(result[j].RequestedDeliveryDate()) {
			return result[i].RequestedDeliveryDate().After(result[j].RequestedDeliveryDate())
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

func (r *OrderRepository) Update(ctx context.Context, entity *order.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	if _, ok := s.rooms[entity.RoomID()]; !ok {
		return infra.WrapRepoErr("order references missing room", nil, infra.KindForeignKeyViolated)
	}

	s.orders[entity.ID()] = order.Reconstruct(
		entity.ID(), entity.RequestedDeliveryDate(), entity.RoomID(),
		entity.Products(), entity.Options(),
		current.CreatedAt(), s.clock.Now(),
	)
	return nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	delete(s.orders, id)
	return nil
}
