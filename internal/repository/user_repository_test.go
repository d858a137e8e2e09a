package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// A full property must roll the registration back without touching any row.
func TestRegisterTenant_PropertyFull(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "properties" SET "occupied_count"=occupied_count + $1 WHERE id = $2 AND occupied_count < capacity`,
	)).
		WithArgs(1, "prop-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	user := &models.User{ID: "user-1", Role: models.RoleTenant, FullName: "T", Phone: "900000002"}
	link := &models.PropertyTenant{ID: "link-1", PropertyID: "prop-1", Status: models.TenancyActive}

	err := repo.RegisterTenant(user, link, nil)
	require.ErrorIs(t, err, ErrPropertyFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The guard must be a single conditional update, not a read-then-write.
func TestRegisterTenant_ConditionalIncrement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "properties" SET "occupied_count"=occupied_count + $1 WHERE id = $2 AND occupied_count < capacity`,
	)).
		WithArgs(1, "prop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "property_tenants"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &models.User{ID: "user-1", Role: models.RoleTenant, FullName: "T", Phone: "900000002"}
	link := &models.PropertyTenant{ID: "link-1", PropertyID: "prop-1", Status: models.TenancyActive}

	err := repo.RegisterTenant(user, link, nil)
	require.NoError(t, err)
	require.Equal(t, "user-1", link.TenantID)
	require.NoError(t, mock.ExpectationsWereMet())
}
