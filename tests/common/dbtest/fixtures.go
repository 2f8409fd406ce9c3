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

// CreateTestUser inserts a user with empty reputation, as provisioning does.
func CreateTestUser(t *testing.T, db DBLike, displayName, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	email := strings.ToLower(strings.ReplaceAll(displayName, " ", ".")) + "+" + userID.String()[:8] + "@example.com"

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO users (id, email, display_name, role) VALUES ($1, $2, $3, $4)",
		userID, email, displayName, role)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO reputation_stats (user_id) VALUES ($1)", userID)
	require.NoError(t, err)

	return userID
}

// ShiftOrderDeadlines moves every deadline of the order into the past so the next read reconciles it.
func ShiftOrderDeadlines(t *testing.T, db DBLike, orderID uuid.UUID, by time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE orders SET
		    payment_deadline      = payment_deadline - $2::interval,
		    confirmation_deadline = confirmation_deadline - $2::interval
		WHERE id = $1`, orderID, fmt.Sprintf("%d seconds", int64(by.Seconds())))
	require.NoError(t, err)
}

// ExpireReservation backdates a hold so it has already lapsed.
func ExpireReservation(t *testing.T, db DBLike, reservationID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE reservations SET reserved_at = now() - interval '2 hours', expires_at = now() - interval '1 hour'
		WHERE id = $1`, reservationID)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables; fixtures are created by the test that needs them
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
