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

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Insert(ctx context.Context, entity *catalog.Product) error {
	w := entity.OrderWindow()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (
			id, name, price_oere, availability, max_order_quantity,
			window_from_hour, window_from_minute, window_to_hour, window_to_minute
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		entity.ID(), entity.Name(), entity.PriceOere(), entity.Availability(), entity.MaxOrderQuantity(),
		w.From().Hour(), w.From().Minute(), w.To().Hour(), w.To().Minute(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, price_oere, availability, max_order_quantity,
		       window_from_hour, window_from_minute, window_to_hour, window_to_minute,
		       created_at, updated_at
		FROM products
		WHERE id = $1
	`, id)

	entity, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by id", err)
	}
	return entity, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price_oere, availability, max_order_quantity,
		       window_from_hour, window_from_minute, window_to_hour, window_to_minute,
		       created_at, updated_at
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	result := make([]*catalog.Product, 0)
	for rows.Next() {
		entity, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

func (r *ProductRepository) Update(ctx context.Context, entity *catalog.Product) error {
	w := entity.OrderWindow()
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, price_oere = $2, availability = $3, max_order_quantity = $4,
		    window_from_hour = $5, window_from_minute = $6, window_to_hour = $7, window_to_minute = $8,
		    updated_at = now()
		WHERE id = $9
	`,
		entity.Name(), entity.PriceOere(), entity.Availability(), entity.MaxOrderQuantity(),
		w.From().Hour(), w.From().Minute(), w.To().Hour(), w.To().Minute(),
		entity.ID(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("product is referenced by orders", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanProduct(row pgx.Row) (*catalog.Product, error) {
	var (
		id                             uuid.UUID
		name                           string
		priceOere                      int64
		availability, maxOrderQuantity int
		fromHour, fromMinute           int
		toHour, toMinute               int
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(
		&id, &name, &priceOere, &availability, &maxOrderQuantity,
		&fromHour, &fromMinute, &toHour, &toMinute,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	window, err := windowFromColumns(fromHour, fromMinute, toHour, toMinute)
	if err != nil {
		return nil, err
	}

	return catalog.ReconstructProduct(id, name, priceOere, availability, maxOrderQuantity, window, createdAt, updatedAt), nil
}

func windowFromColumns(fromHour, fromMinute, toHour, toMinute int) (catalog.OrderWindow, error) {
	from, err := catalog.NewWindowTime(fromHour, fromMinute)
	if err != nil {
		return catalog.OrderWindow{}, err
	}
	to, err := catalog.NewWindowTime(toHour, toMinute)
	if err != nil {
		return catalog.OrderWindow{}, err
	}
	return catalog.NewOrderWindow(from, to)
}
