package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/pkg/database"
)

// testDatabase connects to the database named by TEST_DATABASE_URL. Tests
// calling it are skipped when the variable is unset.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Pool.Close)

	return db
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"work_records",
		"leave_schedules",
		"holidays",
		"overtime_requests",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// createTestUser inserts a user row and returns its id.
func createTestUser(t *testing.T, db *database.DB, name, email, department string) string {
	t.Helper()

	var userID string
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, name, email, department, role, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, 'employee', NOW(), NOW())
		RETURNING id
	`, name, email, department).Scan(&userID)
	require.NoError(t, err)

	return userID
}
