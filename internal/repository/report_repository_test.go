package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bantayan/disaster-report-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// mockedRepo wires the repository to a sqlmock connection through the MySQL
// dialector, for exercising store failures that a live SQLite file will not
// produce on demand.
func mockedRepo(t *testing.T) (ReportRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewReportRepository(db), mock
}

func TestGormReportRepository_List_Error(t *testing.T) {
	repo, mock := mockedRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `reports`").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.List()
	require.ErrorContains(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReportRepository_Create_Error(t *testing.T) {
	repo, mock := mockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reports`").
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.Create(&models.Report{Title: "t", Description: "d"})
	require.ErrorContains(t, err, "database is locked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReportRepository_ListOrder(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Report{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	repo := NewReportRepository(db)
	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(&models.Report{Title: title, Description: "d"}))
	}

	reports, err := repo.List()
	require.NoError(t, err)
	require.Len(t, reports, 3)
	require.Equal(t, "third", reports[0].Title)
	require.Equal(t, "first", reports[2].Title)

	count, err := repo.Count()
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}
