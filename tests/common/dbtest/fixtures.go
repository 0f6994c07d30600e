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

func CreateTestEmployee(t *testing.T, db DBLike, firstName, lastName string) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO employees (id, first_name, last_name, hired_at, is_active) VALUES ($1, $2, $3, '2024-04-01', true)",
		employeeID, firstName, lastName)
	require.NoError(t, err)

	return employeeID
}

// CreateTestUser creates an employee plus a linked account whose password is
// "password123".
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	userID, _ := CreateTestUserWithEmployee(t, db, email, role)
	return userID
}

func CreateTestUserWithEmployee(t *testing.T, db DBLike, email, role string) (uuid.UUID, uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	name, _, _ := strings.Cut(email, "@")
	employeeID := CreateTestEmployee(t, db, name, "Tester")

	userID := uuid.New()
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, employee_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role, employeeID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx,
			"SELECT id, employee_id FROM users WHERE email = $1", email).Scan(&userID, &employeeID))
	}

	return userID, employeeID
}

func ShiftTypeID(t *testing.T, db DBLike, code string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM shift_types WHERE code = $1", code).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPeriod(t *testing.T, db DBLike, year, month int, status string) uuid.UUID {
	t.Helper()

	periodID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO schedule_periods (id, year, month, status) VALUES ($1, $2, $3, $4) ON CONFLICT (year, month) DO NOTHING",
		periodID, year, month, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx,
			"SELECT id FROM schedule_periods WHERE year = $1 AND month = $2", year, month).Scan(&periodID))
	}

	return periodID
}

func CreateTestEntry(t *testing.T, db DBLike, periodID, employeeID uuid.UUID, date string, shiftTypeID uuid.UUID) uuid.UUID {
	t.Helper()

	entryID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO schedule_entries (id, period_id, employee_id, date, shift_type_id) VALUES ($1, $2, $3, $4, $5)",
		entryID, periodID, employeeID, date, shiftTypeID)
	require.NoError(t, err)

	return entryID
}

func CreateTestBalance(t *testing.T, db DBLike, employeeID uuid.UUID, year, totalDays int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO vacation_balances (id, employee_id, year, total_days) VALUES ($1, $2, $3, $4) ON CONFLICT (employee_id, year) DO NOTHING",
		uuid.New(), employeeID, year, totalDays)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Insert shift types
	_, err := pool.Exec(ctx, `
		INSERT INTO shift_types (id, code, name, start_time, end_time, color) VALUES
		    (gen_random_uuid(), 'M', 'Morning', '06:00', '14:00', '#f6c344'),
		    (gen_random_uuid(), 'E', 'Evening', '14:00', '22:00', '#4a90d9'),
		    (gen_random_uuid(), 'N', 'Night', '22:00', '06:00', '#5a4fcf'),
		    (gen_random_uuid(), 'L', 'Day Off', '00:00', '00:00', '#cccccc')
		ON CONFLICT (code) DO NOTHING;
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
