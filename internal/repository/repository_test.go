package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spec-kit/blogging-platform/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.BlogPost{}, &domain.Comment{}))
	return db
}

func newTestUser(name, phone string) domain.User {
	return domain.User{
		Base: domain.Base{
			ID:        domain.NewID(),
			CreatedAt: time.Now().UTC(),
			CreatedBy: domain.SystemActor,
			IsActive:  true,
		},
		FullName:    name,
		PhoneNumber: phone,
		Password:    "hashed",
		Role:        domain.RoleUser,
	}
}

func TestRepository_AddAndFind(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	ctx := context.Background()

	user := newTestUser("Ama Mensah", "233274810934")
	require.True(t, repo.Add(ctx, &user))

	found, ok := repo.Find(ctx, "phone_number = ?", "233274810934")
	require.True(t, ok)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Ama Mensah", found.FullName)
}

func TestRepository_FindMissingReturnsFalse(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())

	found, ok := repo.Find(context.Background(), "id = ?", "nope")
	assert.False(t, ok)
	assert.Nil(t, found)
}

func TestRepository_Exists(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	ctx := context.Background()

	user := newTestUser("Kofi Boateng", "233200000001")
	require.True(t, repo.Add(ctx, &user))

	assert.True(t, repo.Exists(ctx, "phone_number = ?", "233200000001"))
	assert.False(t, repo.Exists(ctx, "phone_number = ?", "233200000002"))
}

func TestRepository_Update(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	ctx := context.Background()

	user := newTestUser("Kofi Boateng", "233200000001")
	require.True(t, repo.Add(ctx, &user))

	user.FullName = "Kofi B."
	require.True(t, repo.Update(ctx, &user))

	found, ok := repo.Find(ctx, "id = ?", user.ID)
	require.True(t, ok)
	assert.Equal(t, "Kofi B.", found.FullName)
}

func TestRepository_SoftDelete(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	ctx := context.Background()

	user := newTestUser("Kofi Boateng", "233200000001")
	require.True(t, repo.Add(ctx, &user))
	require.True(t, repo.SoftDelete(ctx, user.ID))

	found, ok := repo.Find(ctx, "id = ?", user.ID)
	require.True(t, ok, "soft-deleted rows stay in the table")
	assert.False(t, found.IsActive)
	assert.True(t, found.IsDeleted)
	assert.False(t, found.Visible())
	require.NotNil(t, found.DeletedDate)
	assert.NotNil(t, found.UpdatedAt)
}

func TestRepository_SoftDeleteMissing(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	assert.False(t, repo.SoftDelete(context.Background(), "nope"))
}

func TestRepository_HardDelete(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	ctx := context.Background()

	user := newTestUser("Kofi Boateng", "233200000001")
	require.True(t, repo.Add(ctx, &user))
	require.True(t, repo.HardDelete(ctx, user.ID))

	_, ok := repo.Find(ctx, "id = ?", user.ID)
	assert.False(t, ok)
}

func TestRepository_BulkInsert(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	ctx := context.Background()

	batch := []domain.User{
		newTestUser("One", "233200000001"),
		newTestUser("Two", "233200000002"),
		newTestUser("Three", "233200000003"),
	}
	require.True(t, repo.BulkInsert(ctx, batch))

	var count int64
	require.NoError(t, repo.Query(ctx).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestRepository_BulkInsertEmpty(t *testing.T) {
	repo := New[domain.User](setupTestDB(t), zap.NewNop())
	assert.False(t, repo.BulkInsert(context.Background(), nil))
}
