package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormBlobs_SQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	blobs, err := NewGormBlobs(db)
	require.NoError(t, err)

	exerciseBlobs(t, blobs)
}

func TestGormBlobs_SQLitePersistsAcrossHandles(t *testing.T) {
	ctx := context.Background()
	dsn := "file:blobs_handle_test?mode=memory&cache=shared"

	db1, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	blobs1, err := NewGormBlobs(db1)
	require.NoError(t, err)
	require.NoError(t, blobs1.Set(ctx, KeyFoodPosts, `[{"id":"p1"}]`))

	db2, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	blobs2, err := NewGormBlobs(db2)
	require.NoError(t, err)

	v, ok, err := blobs2.Get(ctx, KeyFoodPosts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"p1"}]`, v)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormBlobs_PostgresGet(t *testing.T) {
	db, mock := setupMockDB(t)
	blobs := &gormBlobs{db: db}
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"key", "value"}).AddRow(KeyUsers, `[]`)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "blobs"`)).WillReturnRows(rows)

		v, ok, err := blobs.Get(ctx, KeyUsers)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, v)
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "blobs"`)).WillReturnError(gorm.ErrRecordNotFound)

		_, ok, err := blobs.Get(ctx, KeyUsers)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBlobs_PostgresSetUpserts(t *testing.T) {
	db, mock := setupMockDB(t)
	blobs := &gormBlobs{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "blobs" .*ON CONFLICT`).
		WithArgs(KeyOrders, `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, blobs.Set(context.Background(), KeyOrders, `[]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}
