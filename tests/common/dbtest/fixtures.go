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

func CreateTestPlot(t *testing.T, db DBLike, name string, capacity int, pricePerPersonCents int64) uuid.UUID {
	t.Helper()

	plotID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO plots (id, name, capacity, price_per_person_cents, description)
		VALUES ($1, $2, $3, $4, '')
		ON CONFLICT (name) DO NOTHING`,
		plotID, name, capacity, pricePerPersonCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM plots WHERE name = $1", name).Scan(&plotID)
	}

	return plotID
}

func CreateTestReservation(t *testing.T, db DBLike, plotID uuid.UUID, checkIn, checkOut time.Time, occupants int, totalPriceCents int64) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, customer_name, customer_phone, check_in, check_out, total_price_cents)
		VALUES ($1, 'Test Customer', '600123456', $2, $3, $4)`,
		reservationID, checkIn, checkOut, totalPriceCents)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO plot_assignments (id, reservation_id, plot_id, occupant_count)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), reservationID, plotID, occupants)
	require.NoError(t, err)

	return reservationID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO plots (name, capacity, price_per_person_cents, description) VALUES
		    ('Riverside', 4, 1500, 'Next to the river'),
		    ('Meadow', 6, 1200, 'Open field')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
