package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crastudio/crastudio/domain/record"
)

type note struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Slug   string `gorm:"column:slug;uniqueIndex"`
	Status string `gorm:"column:status"`
	Score  int    `gorm:"column:score"`
}

func (note) TableName() string { return "notes" }

// newTestDB creates an in-memory SQLite database with the test schema.
// Cannot use the testdb package here due to import cycle.
func newTestDB(t *testing.T) Database {
	t.Helper()
	ctx := context.Background()
	db, err := NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	require.NoError(t, db.GORM().AutoMigrate(&note{}))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepository_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[note](newTestDB(t), "note")

	first := note{Slug: "a", Status: "Open", Score: 3}
	require.NoError(t, repo.Create(ctx, &first))
	assert.Equal(t, int64(1), first.ID)

	second := note{Slug: "b", Status: "Open", Score: 5}
	require.NoError(t, repo.Create(ctx, &second))
	assert.Greater(t, second.ID, first.ID)
}

func TestRepository_CreateDuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[note](newTestDB(t), "note")

	require.NoError(t, repo.Create(ctx, &note{Slug: "dup"}))

	err := repo.Create(ctx, &note{Slug: "dup"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestRepository_FindWithConditionsAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[note](newTestDB(t), "note")

	for _, n := range []note{
		{Slug: "a", Status: "Open", Score: 2},
		{Slug: "b", Status: "Closed", Score: 9},
		{Slug: "c", Status: "Open", Score: 8},
	} {
		n := n
		require.NoError(t, repo.Create(ctx, &n))
	}

	open, err := repo.Find(ctx, record.WithStatusNot("Closed"), record.LatestFirst())
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "c", open[0].Slug)
	assert.Equal(t, "a", open[1].Slug)

	high, err := repo.Find(ctx, record.WithConditionAtLeast("score", 8))
	require.NoError(t, err)
	assert.Len(t, high, 2)
}

func TestRepository_FindOneNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[note](newTestDB(t), "note")

	_, err := repo.FindOne(ctx, record.WithID(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ExistsAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[note](newTestDB(t), "note")

	exists, err := repo.Exists(ctx, record.WithID(1))
	require.NoError(t, err)
	assert.False(t, exists)

	n := note{Slug: "x", Status: "Open"}
	require.NoError(t, repo.Create(ctx, &n))

	exists, err = repo.Exists(ctx, record.WithID(n.ID))
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_UpdatesReportsRowsAffected(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[note](newTestDB(t), "note")

	n := note{Slug: "x", Status: "Open"}
	require.NoError(t, repo.Create(ctx, &n))

	affected, err := repo.Updates(ctx, map[string]any{"status": "Closed"}, record.WithCondition("slug", "x"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Updates(ctx, map[string]any{"status": "Closed"}, record.WithCondition("slug", "missing"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository[note](db, "note")

	sentinel := errors.New("boom")
	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		if result := tx.Create(&note{Slug: "tx"}); result.Error != nil {
			return result.Error
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
