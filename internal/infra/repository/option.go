package repository

import (
	"context"
	"time"

	"kantine-order-api/internal/domain/catalog"
	"kantine-order-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OptionRepository struct {
	pool *pgxpool.Pool
}

func NewOptionRepository(pool *pgxpool.Pool) *OptionRepository {
	return &OptionRepository{pool: pool}
}

func (r *OptionRepository) Insert(ctx context.Context, entity *catalog.Option) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO options (id, name, price_oere, availability, max_order_quantity)
		VALUES ($1, $2, $3, $4, $5)
	`, entity.ID(), entity.Name(), entity.PriceOere(), entity.Availability(), entity.MaxOrderQuantity())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("option name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert option", err)
	}
	return nil
}

func (r *OptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Option, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, price_oere, availability, max_order_quantity, created_at, updated_at
		FROM options
		WHERE id = $1
	`, id)

	entity, err := scanOption(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find option by id", err)
	}
	return entity, nil
}

func (r *OptionRepository) FindAll(ctx context.Context) ([]*catalog.Option, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price_oere, availability, max_order_quantity, created_at, updated_at
		FROM options
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list options", err)
	}
	defer rows.Close()

	result := make([]*catalog.Option, 0)
	for rows.Next() {
		entity, err := scanOption(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan option row", err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate option rows", err)
	}
	return result, nil
}

func (r *OptionRepository) Update(ctx context.Context, entity *catalog.Option) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE options
		SET name = $1, price_oere = $2, availability = $3, max_order_quantity = $4, updated_at = now()
		WHERE id = $5
	`, entity.Name(), entity.PriceOere(), entity.Availability(), entity.MaxOrderQuantity(), entity.ID())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("option name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("option not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OptionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("option is referenced by orders", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("option not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanOption(row pgx.Row) (*catalog.Option, error) {
	var (
		id                             uuid.UUID
		name                           string
		priceOere                      int64
		availability, maxOrderQuantity int
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(&id, &name, &priceOere, &availability, &maxOrderQuantity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return catalog.ReconstructOption(id, name, priceOere, availability, maxOrderQuantity, createdAt, updatedAt), nil
}
