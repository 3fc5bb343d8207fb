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

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING", userID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

type CarFixture struct {
	Name          string
	Number        string
	Price         string
	DiscountPrice *string
	HalfDayPrice  *string
}

// CreateTestCar takes prices as decimal strings so NUMERIC columns are
// written exactly.
func CreateTestCar(t *testing.T, db DBLike, car CarFixture) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO cars (id, name, vehicle_number, price, discountprice, halfdayprice) VALUES ($1, $2, $3, $4::NUMERIC, $5::NUMERIC, $6::NUMERIC)",
		carID, car.Name, car.Number, car.Price, car.DiscountPrice, car.HalfDayPrice)
	require.NoError(t, err)

	return carID
}

func CreateTestBooking(t *testing.T, db DBLike, userID, carID uuid.UUID, startAt, endAt time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, user_id, car_id, start_at, end_at, status) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, userID, carID, startAt, endAt, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
