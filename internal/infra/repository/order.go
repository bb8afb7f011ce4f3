package repository

import (
	"context"
	"time"

	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Insert writes the order header and its lines in one transaction so a
// half-written order never becomes visible.
func (r *OrderRepository) Insert(ctx context.Context, entity *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, requested_delivery_date, room_id)
		VALUES ($1, $2, $3)
	`, entity.ID(), entity.RequestedDeliveryDate(), entity.RoomID())
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("order references missing room", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}

	if err := insertOrderLines(ctx, tx, entity); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit order insert", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, requested_delivery_date, room_id, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	var (
		orderID              uuid.UUID
		deliveryDate         time.Time
		roomID               uuid.UUID
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&orderID, &deliveryDate, &roomID, &createdAt, &updatedAt); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by id", err)
	}

	products, err := r.loadProductLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	options, err := r.loadOptionLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return order.Reconstruct(orderID, deliveryDate, roomID, products, options, createdAt, updatedAt), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, requested_delivery_date, room_id, created_at, updated_at
		FROM orders
		ORDER BY requested_delivery_date DESC, created_at DESC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	type header struct {
		id                   uuid.UUID
		deliveryDate         time.Time
		roomID               uuid.UUID
		createdAt, updatedAt time.Time
	}
	headers := make([]header, 0)
	for rows.Next() {
		var h header
		if err := rows.Scan(&h.id, &h.deliveryDate, &h.roomID, &h.createdAt, &h.updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	result := make([]*order.Order, 0, len(headers))
	for _, h := range headers {
		products, err := r.loadProductLines(ctx, h.id)
		if err != nil {
			return nil, err
		}
		options, err := r.loadOptionLines(ctx, h.id)
		if err != nil {
			return nil, err
		}
		result = append(result, order.Reconstruct(h.id, h.deliveryDate, h.roomID, products, options, h.createdAt, h.updatedAt))
	}
	return result, nil
}

// Update rewrites the header and replaces the line sets. Lines are deleted and
// reinserted rather than diffed: the sets are small and the candidate was
// already admitted as a whole.
func (r *OrderRepository) Update(ctx context.Context, entity *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET requested_delivery_date = $1, room_id = $2, updated_at = now()
		WHERE id = $3
	`, entity.RequestedDeliveryDate(), entity.RoomID(), entity.ID())
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("order references missing room", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, entity.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear order product lines", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM order_options WHERE order_id = $1`, entity.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear order option lines", err)
	}
	if err := insertOrderLines(ctx, tx, entity); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit order update", err)
	}
	return nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func insertOrderLines(ctx context.Context, tx pgx.Tx, entity *order.Order) error {
	for i, line := range entity.Products() {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_products (order_id, product_id, quantity, line_no)
			VALUES ($1, $2, $3, $4)
		`, entity.ID(), line.ProductID, line.Quantity, i)
		if err != nil {
			if isForeignKeyViolation(err) {
				return infra.WrapRepoErr("order line references missing product", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert order product line", err)
		}
	}
	for i, line := range entity.Options() {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_options (order_id, option_id, quantity, line_no)
			VALUES ($1, $2, $3, $4)
		`, entity.ID(), line.OptionID, line.Quantity, i)
		if err != nil {
			if isForeignKeyViolation(err) {
				return infra.WrapRepoErr("order line references missing option", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert order option line", err)
		}
	}
	return nil
}

func (r *OrderRepository) loadProductLines(ctx context.Context, orderID uuid.UUID) ([]order.ProductLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity
		FROM order_products
		WHERE order_id = $1
		ORDER BY line_no
	`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order product lines", err)
	}
	defer rows.Close()

	lines := make([]order.ProductLine, 0)
	for rows.Next() {
		var line order.ProductLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order product line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order product lines", err)
	}
	return lines, nil
}

func (r *OrderRepository) loadOptionLines(ctx context.Context, orderID uuid.UUID) ([]order.OptionLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT option_id, quantity
		FROM order_options
		WHERE order_id = $1
		ORDER BY line_no
	`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order option lines", err)
	}
	defer rows.Close()

	lines := make([]order.OptionLine, 0)
	for rows.Next() {
		var line order.OptionLine
		if err := rows.Scan(&line.OptionID, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order option line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order option lines", err)
	}
	return lines, nil
}
