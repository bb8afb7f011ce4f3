package memory

import (
	"context"
	"sort"

	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/infra"

	"github.com/google/uuid"
)

type RoomRepository struct {
	store *Store
}

func (r *RoomRepository) Insert(ctx context.Context, entity *room.Room) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roomNameTaken(entity.Name(), entity.ID()) {
		return infra.WrapRepoErr("room name already exists", nil, infra.KindDuplicateKey)
	}

	now := s.clock.Now()
	s.rooms[entity.ID()] = room.Reconstruct(entity.ID(), entity.Name(), entity.Description(), now, now)
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return entity, nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*room.Room, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*room.Room, 0, len(s.rooms))
	for _, entity := range s.rooms {
		result = append(result, entity)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.rooms[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	if s.roomNameTaken(entity.Name(), entity.ID()) {
		return infra.WrapRepoErr("room name already exists", nil, infra.KindDuplicateKey)
	}

	s.rooms[entity.ID()] = room.Reconstruct(
		entity.ID(), entity.Name(), entity.Description(),
		current.CreatedAt(), s.clock.Now(),
	)
	return nil
}

func (r *RoomRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	if s.roomReferenced(id) {
		return infra.WrapRepoErr("room is referenced by orders", nil, infra.KindForeignKeyViolated)
	}
	delete(s.rooms, id)
	return nil
}
