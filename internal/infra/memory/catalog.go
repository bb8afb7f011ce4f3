package memory

import (
	"context"
	"sort"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/infra"

	"github.com/google/uuid"
)

type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Insert(ctx context.Context, entity *catalog.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productNameTaken(entity.Name(), entity.ID()) {
		return infra.WrapRepoErr("product name already exists", nil, infra.KindDuplicateKey)
	}

	now := s.clock.Now()
	s.products[entity.ID()] = catalog.ReconstructProduct(
		entity.ID(), entity.Name(), entity.PriceOere(),
		entity.Availability(), entity.MaxOrderQuantity(), entity.OrderWindow(),
		now, now,
	)
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return entity, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*catalog.Product, 0, len(s.products))
	for _, entity := range s.products {
		result = append(result, entity)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (r *ProductRepository) Update(ctx context.Context, entity *catalog.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	if s.productNameTaken(entity.Name(), entity.ID()) {
		return infra.WrapRepoErr("product name already exists", nil, infra.KindDuplicateKey)
	}

	s.products[entity.ID()] = catalog.ReconstructProduct(
		entity.ID(), entity.Name(), entity.PriceOere(),
		entity.Availability(), entity.MaxOrderQuantity(), entity.OrderWindow(),
		current.CreatedAt(), s.clock.Now(),
	)
	return nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	if s.productReferenced(id) {
		return infra.WrapRepoErr("product is referenced by orders", nil, infra.KindForeignKeyViolated)
	}
	delete(s.products, id)
	return nil
}

type OptionRepository struct {
	store *Store
}

func (r *OptionRepository) Insert(ctx context.Context, entity *catalog.Option) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.optionNameTaken(entity.Name(), entity.ID()) {
		return infra.WrapRepoErr("option name already exists", nil, infra.KindDuplicateKey)
	}

	now := s.clock.Now()
	s.options[entity.ID()] = catalog.ReconstructOption(
		entity.ID(), entity.Name(), entity.PriceOere(),
		entity.Availability(), entity.MaxOrderQuantity(),
		now, now,
	)
	return nil
}

func (r *OptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Option, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.options[id]
	if !ok {
		return nil, infra.WrapRepoErr("option not found", nil, infra.KindNotFound)
	}
	return entity, nil
}

func (r *OptionRepository) FindAll(ctx context.Context) ([]*catalog.Option, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*catalog.Option, 0, len(s.options))
	for _, entity := range s.options {
		result = append(result, entity)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (r *OptionRepository) Update(ctx context.Context, entity *catalog.Option) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.options[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("option not found", nil, infra.KindNotFound)
	}
	if s.optionNameTaken(entity.Name(), entity.ID()) {
		return infra.WrapRepoErr("option name already exists", nil, infra.KindDuplicateKey)
	}

	s.options[entity.ID()] = catalog.ReconstructOption(
		entity.ID(), entity.Name(), entity.PriceOere(),
		entity.Availability(), entity.MaxOrderQuantity(),
		current.CreatedAt(), s.clock.Now(),
	)
	return nil
}

func (r *OptionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.options[id]; !ok {
		return infra.WrapRepoErr("option not found", nil, infra.KindNotFound)
	}
	if s.optionReferenced(id) {
		return infra.WrapRepoErr("option is referenced by orders", nil, infra.KindForeignKeyViolated)
	}
	delete(s.options, id)
	return nil
}
