package repository

import (
	"testing"

	"github.com/bantayan/disaster-report-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserRepo(t *testing.T) (UserRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewUserRepository(db), db
}

func TestGormUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, db := setupUserRepo(t)

	first := &models.User{Name: "A", Email: "a@b.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(first))

	second := &models.User{Name: "B", Email: "a@b.com", PasswordHash: "hash"}
	err := repo.Create(second)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@b.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	repo, _ := setupUserRepo(t)

	require.NoError(t, repo.Create(&models.User{Name: "A", Email: "a@b.com", PasswordHash: "hash"}))

	user, err := repo.FindByEmail("a@b.com")
	require.NoError(t, err)
	require.Equal(t, "A", user.Name)

	_, err = repo.FindByEmail("missing@b.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGormUserRepository_CountByEmail(t *testing.T) {
	repo, _ := setupUserRepo(t)

	count, err := repo.CountByEmail("a@b.com")
	require.NoError(t, err)
	require.Zero(t, count)

	require.NoError(t, repo.Create(&models.User{Name: "A", Email: "a@b.com", PasswordHash: "hash"}))

	count, err = repo.CountByEmail("a@b.com")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
