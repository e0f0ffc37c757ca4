package database_test

import (
	"context"
	"testing"

	"ctws/internal/config"
	"ctws/internal/database"
	"ctws/internal/logging"
	"ctws/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
}

func TestOpenAndMigrate(t *testing.T) {
	db, err := database.Open(config.DriverSQLite, memoryDSN(), logging.Discard())
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))
	// Running twice must be harmless.
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"users", "meals", "user_body_parameters", "user_telegram_credentials"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Username"))
	assert.True(t, db.Migrator().HasIndex(&models.UserTelegramCredentials{}, "UserID"))

	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("oracle", "dsn", logging.Discard())
	assert.ErrorContains(t, err, "unsupported database driver")
}
