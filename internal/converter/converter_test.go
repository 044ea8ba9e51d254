package converter

import (
	"testing"
	"time"

	"clinic-booking-service/internal/domain/entity"
)

func TestPatientToResponse(t *testing.T) {
	email := "jane@example.com"
	patient := &entity.Patient{
		ID:          3,
		FullName:    "Jane Doe",
		DateOfBirth: time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC),
		Gender:      "F",
		Email:       &email,
		Phone:       "555-0101",
	}

	resp := PatientToResponse(patient)
	if resp == nil {
		t.Fatal("response should not be nil")
	}
	if resp.DateOfBirth != "1990-06-01" {
		t.Errorf("DateOfBirth = %q, want 1990-06-01", resp.DateOfBirth)
	}
	if resp.Email == nil || *resp.Email != email {
		t.Errorf("Email = %v, want %q", resp.Email, email)
	}
}

func TestPatientToResponseNil(t *testing.T) {
	if PatientToResponse(nil) != nil {
		t.Error("nil patient should convert to nil response")
	}
}

func TestAppointmentToResponseOmitsUnloadedJoins(t *testing.T) {
	appointment := &entity.Appointment{
		ID:                10,
		AppointmentNumber: "AP-20260914-0A1B2C",
		PatientID:         3,
		DoctorID:          4,
		Status:            entity.AppointmentStatusScheduled,
		DurationMinutes:   30,
	}

	resp := AppointmentToResponse(appointment)
	if resp == nil {
		t.Fatal("response should not be nil")
	}
	if resp.Patient != nil || resp.Doctor != nil || resp.Room != nil {
		t.Error("joined rows should be omitted when not preloaded")
	}
	if resp.Status != "scheduled" {
		t.Errorf("Status = %q, want scheduled", resp.Status)
	}
}

func TestAppointmentToResponseIncludesPreloadedJoins(t *testing.T) {
	roomNumber := "201-A"
	appointment := &entity.Appointment{
		ID:        11,
		PatientID: 3,
		DoctorID:  4,
		Patient:   entity.Patient{ID: 3, FullName: "Jane Doe"},
		Doctor:    entity.Doctor{ID: 4, FullName: "Dr. Smith"},
		Room:      &entity.Room{ID: 9, RoomNumber: roomNumber},
	}

	resp := AppointmentToResponse(appointment)
	if resp.Patient == nil || resp.Patient.FullName != "Jane Doe" {
		t.Error("preloaded patient should be included")
	}
	if resp.Doctor == nil || resp.Doctor.FullName != "Dr. Smith" {
		t.Error("preloaded doctor should be included")
	}
	if resp.Room == nil || resp.Room.RoomNumber != roomNumber {
		t.Error("preloaded room should be included")
	}
}

func TestUpcomingToResponses(t *testing.T) {
	roomNumber := "305"
	rows := []entity.UpcomingAppointment{
		{
			AppointmentID:     1,
			AppointmentNumber: "AP-20260915-000001",
			Status:            entity.AppointmentStatusConfirmed,
			PatientName:       "Jane Doe",
			DoctorName:        "Dr. Smith",
			RoomNumber:        &roomNumber,
		},
		{
			AppointmentID:     2,
			AppointmentNumber: "AP-20260916-000002",
			Status:            entity.AppointmentStatusScheduled,
			PatientName:       "John Roe",
			DoctorName:        "Dr. Jones",
		},
	}

	responses := UpcomingToResponses(rows)
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(responses))
	}
	if responses[0].RoomNumber == nil || *responses[0].RoomNumber != roomNumber {
		t.Error("room number should carry through for assigned rooms")
	}
	if responses[1].RoomNumber != nil {
		t.Error("room number should stay nil for unassigned rooms")
	}
}
