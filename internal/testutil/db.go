package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/internal/config"
	"github.com/tuanvumaihuynh/product-store/internal/storage/db"
)

// SetupTestDB connects to the database configured through the POSTGRES_*
// environment variables, runs migrations and truncates the tables so each
// test starts from an empty store.
func SetupTestDB(t *testing.T) *db.Client {
	t.Helper()

	cfg, err := config.New[struct {
		Postgres config.Postgres
	}]()
	require.NoError(t, err, "database tests need POSTGRES_* env vars")

	ctx := context.Background()
	pool, err := db.NewPgxPool(ctx, cfg.Postgres)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(pool))

	client := db.NewClient(pool)
	TruncateTables(t, client)

	return client
}

// TruncateTables empties every table touched by the data-access layer.
func TruncateTables(t *testing.T, client *db.Client) {
	t.Helper()

	_, err := client.Exec(context.Background(), `TRUNCATE products, outbox_messages`)
	require.NoError(t, err)
}
