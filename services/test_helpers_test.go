package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinic_availability_go/models"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared memory name so each test gets its own database
	dsn := "file:svc_" + uuid.New().String() + "?mode=memory&cache=shared&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.All()...))

	// Management writes invalidate the package cache when one is set
	ConstraintCache = nil
	Availability = nil

	return db
}

func createTestPractitioner(t *testing.T, db *gorm.DB, id, start, end string) *models.Practitioner {
	t.Helper()
	p := &models.Practitioner{PractitionerID: id, Name: "Dr. " + id, StartTime: start, EndTime: end}
	require.NoError(t, CreatePractitioner(db, p))
	return p
}

func zerologNop() zerolog.Logger {
	return zerolog.Nop()
}
