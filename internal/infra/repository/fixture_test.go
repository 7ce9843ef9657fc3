package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type fixture struct {
	bookings      booking.Repository
	schedules     schedule.Repository
	notifications notification.Repository

	doctorID      uint
	otherDoctorID uint
	patientID     uint

	gorm *gorm.DB
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), db.Config())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func newGormFixture(t *testing.T) fixture {
	t.Helper()
	gdb := openSQLite(t)

	users := []models.User{
		{ID: 1, Name: "Dr. House", Email: "house@clinic.test", Role: "doctor", IsActive: true},
		{ID: 2, Name: "Dr. Grey", Email: "grey@clinic.test", Role: "doctor", IsActive: true},
		{ID: 3, Name: "Ana", Email: "ana@clinic.test", Role: "patient", IsActive: true},
	}
	require.NoError(t, gdb.Create(&users).Error)
	require.NoError(t, gdb.Omit("User").Create(&[]models.Doctor{
		{UserID: 1, ConsultationFee: 120},
		{UserID: 2, ConsultationFee: 90},
	}).Error)
	require.NoError(t, gdb.Omit("User").Create(&models.Patient{UserID: 3}).Error)

	return fixture{
		bookings:      NewBookingGormRepository(gdb),
		schedules:     NewScheduleGormRepository(gdb),
		notifications: NewNotificationGormRepository(gdb),
		doctorID:      1,
		otherDoctorID: 2,
		patientID:     3,
		gorm:          gdb,
	}
}

func newMemoryFixture(t *testing.T) fixture {
	t.Helper()
	s := NewMemoryStore()

	d1 := s.PutDoctor(models.User{Name: "Dr. House", Role: "doctor"}, models.Doctor{ConsultationFee: 120})
	d2 := s.PutDoctor(models.User{Name: "Dr. Grey", Role: "doctor"}, models.Doctor{ConsultationFee: 90})
	p := s.PutPatient(models.User{Name: "Ana", Role: "patient"}, models.Patient{})

	return fixture{
		bookings:      s,
		schedules:     s,
		notifications: s,
		doctorID:      d1.UserID,
		otherDoctorID: d2.UserID,
		patientID:     p.UserID,
	}
}

func forEachStore(t *testing.T, fn func(t *testing.T, f fixture)) {
	t.Run("gorm", func(t *testing.T) { fn(t, newGormFixture(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, newMemoryFixture(t)) })
}

func intPtr(v int) *int { return &v }
