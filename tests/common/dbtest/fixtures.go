//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRoom(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO rooms (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", roomID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE name = $1", name).Scan(&roomID)
	}

	return roomID
}

// CreateTestProduct inserts a product orderable all day with plenty of stock.
func CreateTestProduct(t *testing.T, db DBLike, name string, availability, maxOrderQuantity int) uuid.UUID {
	t.Helper()
	return CreateTestProductWithWindow(t, db, name, availability, maxOrderQuantity, 0, 0, 23, 59)
}

func CreateTestProductWithWindow(t *testing.T, db DBLike, name string, availability, maxOrderQuantity, fromHour, fromMinute, toHour, toMinute int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO products (id, name, price_oere, availability, max_order_quantity,
		                      window_from_hour, window_from_minute, window_to_hour, window_to_minute)
		VALUES ($1, $2, 2500, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO NOTHING`,
		productID, name, availability, maxOrderQuantity, fromHour, fromMinute, toHour, toMinute)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM products WHERE name = $1", name).Scan(&productID)
	}

	return productID
}

func CreateTestOption(t *testing.T, db DBLike, name string, availability, maxOrderQuantity int) uuid.UUID {
	t.Helper()

	optionID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO options (id, name, price_oere, availability, max_order_quantity)
		VALUES ($1, $2, 500, $3, $4)
		ON CONFLICT (name) DO NOTHING`,
		optionID, name, availability, maxOrderQuantity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM options WHERE name = $1", name).Scan(&optionID)
	}

	return optionID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from an empty catalog
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
