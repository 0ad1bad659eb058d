package implementation

import (
	"context"
	"testing"
	"time"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	return db, mock
}

func featureColumns() []string {
	return []string{"id", "code", "name", "description", "path", "enabled", "allowed_roles", "created_at", "updated_at", "deleted_at"}
}

func subfeatureColumns() []string {
	return []string{"id", "feature_id", "code", "name", "path", "enabled", "allowed_roles", "created_at", "updated_at", "deleted_at"}
}

func TestFindByCodeReturnsNilNilWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "features"`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows(featureColumns()))

	feature, err := repo.FindByCode(context.Background(), "missing")
	assert.NoError(t, err, "not-found is not an error")
	assert.Nil(t, feature)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCodePreloadsSubfeatures(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	featureId := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "features"`).
		WithArgs("monitoring", 1).
		WillReturnRows(sqlmock.NewRows(featureColumns()).
			AddRow(featureId, "monitoring", "Monitoring", "", "/monitoring", true, []byte(`["ROOT","ADMIN"]`), now, now, nil))

	mock.ExpectQuery(`SELECT \* FROM "subfeatures"`).
		WithArgs(featureId).
		WillReturnRows(sqlmock.NewRows(subfeatureColumns()).
			AddRow(uuid.New(), featureId, "monitoring-servers", "Servers", "/monitoring/servers", true, []byte(`["ROOT","ADMIN"]`), now, now, nil))

	feature, err := repo.FindByCode(context.Background(), "monitoring")
	assert.NoError(t, err)
	assert.NotNil(t, feature)
	assert.Equal(t, "monitoring", feature.Code)
	assert.Equal(t, []string{"ROOT", "ADMIN"}, feature.AllowedRoles)
	assert.Len(t, feature.Subfeatures, 1)
	assert.Equal(t, "monitoring-servers", feature.Subfeatures[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllWithSubfeaturesOrdersByCreation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	firstId := uuid.New()
	secondId := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "features" WHERE "features"\."deleted_at" IS NULL ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(featureColumns()).
			AddRow(firstId, "dashboard", "Dashboard", "", "/dashboard", true, []byte(`["ROOT","ADMIN","USER"]`), now, now, nil).
			AddRow(secondId, "monitoring", "Monitoring", "", "/monitoring", true, []byte(`["ROOT","ADMIN"]`), now, now, nil))

	mock.ExpectQuery(`SELECT \* FROM "subfeatures"`).
		WithArgs(firstId, secondId).
		WillReturnRows(sqlmock.NewRows(subfeatureColumns()))

	features, err := repo.FindAllWithSubfeatures(context.Background())
	assert.NoError(t, err)
	assert.Len(t, features, 2)
	assert.Equal(t, "dashboard", features[0].Code)
	assert.Equal(t, "monitoring", features[1].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A concurrent create can slip past the service's uniqueness check; the
// partial unique index then rejects the insert and the repository must
// still report a conflict, not a raw storage error.
func TestCreateUniqueViolationIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "features"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &entity.Feature{
		Id:           uuid.New(),
		Code:         "monitoring",
		Name:         "Monitoring",
		Path:         "/monitoring",
		Enabled:      true,
		AllowedRoles: []string{"ROOT", "ADMIN"},
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubfeatureUniqueViolationIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subfeatures"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.CreateSubfeature(context.Background(), &entity.Subfeature{
		Id:           uuid.New(),
		FeatureId:    uuid.New(),
		Code:         "monitoring-servers",
		Name:         "Servers",
		Path:         "/monitoring/servers",
		Enabled:      true,
		AllowedRoles: []string{"ROOT", "ADMIN"},
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIsSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "features" SET "deleted_at"=`).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSubfeatureByCodeNotFoundIsNilNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeatureRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "subfeatures"`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows(subfeatureColumns()))

	subfeature, err := repo.FindSubfeatureByCode(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, subfeature)
	assert.NoError(t, mock.ExpectationsWereMet())
}
