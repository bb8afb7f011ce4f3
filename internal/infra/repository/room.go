package repository

import (
	"context"
	"time"

	"kantine-order-api/internal/domain/room"
	"kantine-order-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) Insert(ctx context.Context, entity *room.Room) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO rooms (id, name, description)
		VALUES ($1, $2, $3)
	`, entity.ID(), entity.Name(), entity.Description())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("room name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var (
		name, description    string
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT name, description, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`, id).Scan(&name, &description, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}

	return room.Reconstruct(id, name, description, createdAt, updatedAt), nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM rooms
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	result := make([]*room.Room, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			name, description    string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &name, &description, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, room.Reconstruct(id, name, description, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rooms
		SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
	`, entity.Name(), entity.Description(), entity.ID())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("room name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("room is referenced by orders", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
