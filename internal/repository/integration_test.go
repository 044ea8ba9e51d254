//go:build integration

// These tests exercise the schema against a real PostgreSQL instance.
// Point CLINIC_TEST_DSN at a throwaway database, then run:
//
//	go test -tags integration ./internal/repository/
package repository

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/infrastructure/database"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB     *gorm.DB
	testDBOnce sync.Once
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CLINIC_TEST_DSN")
	if dsn == "" {
		t.Skip("CLINIC_TEST_DSN not set")
	}

	testDBOnce.Do(func() {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			t.Fatalf("open test database: %v", err)
		}
		if err := database.RunMigrations(db); err != nil {
			t.Fatalf("run migrations: %v", err)
		}
		testDB = db
	})

	if testDB == nil {
		t.Fatal("test database unavailable")
	}
	return testDB
}

func uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

func createTestPatient(t *testing.T, db *gorm.DB) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{
		FullName:    "Test Patient " + uniqueSuffix(),
		DateOfBirth: time.Date(1985, 5, 20, 0, 0, 0, 0, time.UTC),
		Gender:      "F",
	}
	if err := NewPatientRepository().Create(db, patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return patient
}

func createTestDoctor(t *testing.T, db *gorm.DB) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{
		FullName:      "Test Doctor " + uniqueSuffix(),
		LicenseNumber: "LIC-" + uniqueSuffix(),
	}
	if err := NewDoctorRepository().Create(db, doctor); err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return doctor
}

func createTestRoom(t *testing.T, db *gorm.DB) *entity.Room {
	t.Helper()
	suffix := uniqueSuffix()
	room := &entity.Room{RoomNumber: "R-" + suffix[len(suffix)-14:], Floor: 2}
	if err := NewRoomRepository().Create(db, room); err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func createTestAppointment(t *testing.T, db *gorm.DB, patientID, doctorID int64, roomID *int64, date time.Time) *entity.Appointment {
	t.Helper()
	appointment := &entity.Appointment{
		AppointmentNumber: "AP-TEST-" + uniqueSuffix(),
		PatientID:         patientID,
		DoctorID:          doctorID,
		RoomID:            roomID,
		AppointmentDate:   date,
		DurationMinutes:   30,
		Status:            entity.AppointmentStatusScheduled,
	}
	if err := NewAppointmentRepository().Create(db, appointment); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appointment
}

func TestPatientEmailUniqueness(t *testing.T) {
	db := openTestDB(t)
	email := "dup-" + uniqueSuffix() + "@example.com"

	first := &entity.Patient{
		FullName:    "First",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:      "M",
		Email:       &email,
	}
	if err := NewPatientRepository().Create(db, first); err != nil {
		t.Fatalf("create first patient: %v", err)
	}

	second := &entity.Patient{
		FullName:    "Second",
		DateOfBirth: time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:      "F",
		Email:       &email,
	}
	if err := NewPatientRepository().Create(db, second); err == nil {
		t.Error("duplicate patient email should be rejected")
	}
}

func TestPatientNullEmailsAllowed(t *testing.T) {
	db := openTestDB(t)

	// Multiple patients without email must coexist
	createTestPatient(t, db)
	createTestPatient(t, db)
}

func TestDoctorLicenseUniqueness(t *testing.T) {
	db := openTestDB(t)
	license := "LIC-DUP-" + uniqueSuffix()

	first := &entity.Doctor{FullName: "Dr. One", LicenseNumber: license}
	if err := NewDoctorRepository().Create(db, first); err != nil {
		t.Fatalf("create first doctor: %v", err)
	}

	second := &entity.Doctor{FullName: "Dr. Two", LicenseNumber: license}
	if err := NewDoctorRepository().Create(db, second); err == nil {
		t.Error("duplicate license number should be rejected")
	}
}

func TestAppointmentDurationCheck(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)

	appointment := &entity.Appointment{
		AppointmentNumber: "AP-TEST-" + uniqueSuffix(),
		PatientID:         patient.ID,
		DoctorID:          doctor.ID,
		AppointmentDate:   time.Now().Add(24 * time.Hour),
		DurationMinutes:   0,
		Status:            entity.AppointmentStatusScheduled,
	}
	if err := NewAppointmentRepository().Create(db, appointment); err == nil {
		t.Error("zero duration should violate the check constraint")
	}

	appointment.DurationMinutes = -15
	appointment.AppointmentNumber = "AP-TEST-" + uniqueSuffix()
	if err := NewAppointmentRepository().Create(db, appointment); err == nil {
		t.Error("negative duration should violate the check constraint")
	}
}

func TestInvoiceAmountCheck(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	appointment := createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(24*time.Hour))

	negative := &entity.Invoice{AppointmentID: appointment.ID, Amount: decimal.NewFromInt(-1)}
	if err := NewInvoiceRepository().Create(db, negative); err == nil {
		t.Error("negative amount should violate the check constraint")
	}

	zero := &entity.Invoice{AppointmentID: appointment.ID, Amount: decimal.Zero}
	if err := NewInvoiceRepository().Create(db, zero); err != nil {
		t.Errorf("zero amount should be accepted: %v", err)
	}
}

func TestOneInvoicePerAppointment(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	appointment := createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(24*time.Hour))

	first := &entity.Invoice{AppointmentID: appointment.ID, Amount: decimal.NewFromInt(100)}
	if err := NewInvoiceRepository().Create(db, first); err != nil {
		t.Fatalf("create first invoice: %v", err)
	}

	second := &entity.Invoice{AppointmentID: appointment.ID, Amount: decimal.NewFromInt(200)}
	if err := NewInvoiceRepository().Create(db, second); err == nil {
		t.Error("a second invoice for the same appointment should be rejected")
	}
}

func TestInvoiceMarkPaidOnce(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	appointment := createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(24*time.Hour))

	invoice := &entity.Invoice{AppointmentID: appointment.ID, Amount: decimal.NewFromInt(50)}
	if err := NewInvoiceRepository().Create(db, invoice); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	repo := NewInvoiceRepository()
	affected, err := repo.MarkPaid(db, invoice.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if affected != 1 {
		t.Errorf("first payment affected %d rows, want 1", affected)
	}

	affected, err = repo.MarkPaid(db, invoice.ID)
	if err != nil {
		t.Fatalf("second mark paid: %v", err)
	}
	if affected != 0 {
		t.Errorf("second payment affected %d rows, want 0", affected)
	}
}

func TestPatientDeleteRestrictedByAppointments(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(24*time.Hour))

	if err := NewPatientRepository().Delete(db, patient.ID); err == nil {
		t.Error("deleting a patient with appointments should be restricted")
	}
}

func TestDoctorDeleteRestrictedByAppointments(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(24*time.Hour))

	if err := NewDoctorRepository().Delete(db, doctor.ID); err == nil {
		t.Error("deleting a doctor with appointments should be restricted")
	}
}

func TestRoomDeleteNullsAppointmentReference(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	room := createTestRoom(t, db)
	appointment := createTestAppointment(t, db, patient.ID, doctor.ID, &room.ID, time.Now().Add(24*time.Hour))

	if err := NewRoomRepository().Delete(db, room.ID); err != nil {
		t.Fatalf("delete room: %v", err)
	}

	reloaded, err := NewAppointmentRepository().FindByID(db, appointment.ID)
	if err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if reloaded == nil {
		t.Fatal("appointment should survive the room deletion")
	}
	if reloaded.RoomID != nil {
		t.Errorf("room reference should be nulled, got %v", *reloaded.RoomID)
	}
}

func TestDoctorDeleteCascadesSpecialtiesAndNullsUserLink(t *testing.T) {
	db := openTestDB(t)
	doctor := createTestDoctor(t, db)

	specialty := &entity.Specialty{Name: "Spec-" + uniqueSuffix()}
	if err := NewSpecialtyRepository().Create(db, specialty); err != nil {
		t.Fatalf("create specialty: %v", err)
	}
	doctorRepo := NewDoctorRepository()
	if err := doctorRepo.AttachSpecialty(db, doctor.ID, specialty.ID); err != nil {
		t.Fatalf("attach specialty: %v", err)
	}

	user := &entity.User{
		Username:     "doc-" + uniqueSuffix(),
		PasswordHash: "x",
		Role:         entity.RoleDoctor,
		DoctorID:     &doctor.ID,
	}
	if err := NewUserRepository().Create(db, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := doctorRepo.Delete(db, doctor.ID); err != nil {
		t.Fatalf("delete doctor: %v", err)
	}

	var junctionCount int64
	if err := db.Table("doctor_specialties").Where("doctor_id = ?", doctor.ID).Count(&junctionCount).Error; err != nil {
		t.Fatalf("count junction rows: %v", err)
	}
	if junctionCount != 0 {
		t.Errorf("junction rows should cascade, %d remain", junctionCount)
	}

	reloaded, err := NewUserRepository().FindByID(db, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded == nil {
		t.Fatal("user should survive the doctor deletion")
	}
	if reloaded.DoctorID != nil {
		t.Errorf("user doctor link should be nulled, got %v", *reloaded.DoctorID)
	}
}

func TestAppointmentDeleteCascadesPrescriptionsAndInvoice(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	appointment := createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(24*time.Hour))

	prescription := &entity.Prescription{
		AppointmentID: appointment.ID,
		Medication:    "Paracetamol",
		Dosage:        "500mg",
		Frequency:     "3x daily",
	}
	if err := NewPrescriptionRepository().Create(db, prescription); err != nil {
		t.Fatalf("create prescription: %v", err)
	}

	invoice := &entity.Invoice{AppointmentID: appointment.ID, Amount: decimal.NewFromInt(75)}
	if err := NewInvoiceRepository().Create(db, invoice); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := NewAppointmentRepository().Delete(db, appointment.ID); err != nil {
		t.Fatalf("delete appointment: %v", err)
	}

	gone, err := NewPrescriptionRepository().FindByID(db, prescription.ID)
	if err != nil {
		t.Fatalf("reload prescription: %v", err)
	}
	if gone != nil {
		t.Error("prescription should cascade with its appointment")
	}

	goneInvoice, err := NewInvoiceRepository().FindByID(db, invoice.ID)
	if err != nil {
		t.Fatalf("reload invoice: %v", err)
	}
	if goneInvoice != nil {
		t.Error("invoice should cascade with its appointment")
	}
}

func TestUpcomingAppointmentsView(t *testing.T) {
	db := openTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	room := createTestRoom(t, db)

	later := createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(48*time.Hour))
	sooner := createTestAppointment(t, db, patient.ID, doctor.ID, &room.ID, time.Now().Add(2*time.Hour))
	past := createTestAppointment(t, db, patient.ID, doctor.ID, nil, time.Now().Add(-48*time.Hour))

	rows, err := NewAppointmentRepository().FindUpcoming(db, 0)
	if err != nil {
		t.Fatalf("read view: %v", err)
	}

	positions := make(map[int64]int)
	for i, row := range rows {
		positions[row.AppointmentID] = i

		if row.AppointmentID == past.ID {
			t.Error("past appointment should not appear in the view")
		}
		if row.AppointmentID == sooner.ID {
			if row.RoomNumber == nil || *row.RoomNumber != room.RoomNumber {
				t.Error("view should carry the room number for assigned rooms")
			}
			if row.PatientName != patient.FullName {
				t.Errorf("patient name = %q, want %q", row.PatientName, patient.FullName)
			}
			if row.DoctorName != doctor.FullName {
				t.Errorf("doctor name = %q, want %q", row.DoctorName, doctor.FullName)
			}
		}
		if row.AppointmentID == later.ID && row.RoomNumber != nil {
			t.Error("view should leave the room number null for unassigned rooms")
		}
	}

	soonerPos, ok := positions[sooner.ID]
	if !ok {
		t.Fatal("near-future appointment missing from the view")
	}
	laterPos, ok := positions[later.ID]
	if !ok {
		t.Fatal("far-future appointment missing from the view")
	}
	if soonerPos > laterPos {
		t.Error("view rows should be ordered by date ascending")
	}
}
