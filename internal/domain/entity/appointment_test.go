package entity

import (
	"testing"
	"time"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []AppointmentStatus{"", "pending", "SCHEDULED", "noshow"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestAppointmentIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	future := &Appointment{AppointmentDate: now.Add(time.Hour)}
	if !future.IsUpcoming(now) {
		t.Error("appointment one hour ahead should be upcoming")
	}

	exact := &Appointment{AppointmentDate: now}
	if !exact.IsUpcoming(now) {
		t.Error("appointment at the boundary should be upcoming")
	}

	past := &Appointment{AppointmentDate: now.Add(-time.Minute)}
	if past.IsUpcoming(now) {
		t.Error("past appointment should not be upcoming")
	}
}

func TestAppointmentStatusHelpers(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusCancelled}
	if !a.IsCancelled() || a.IsCompleted() {
		t.Error("cancelled appointment misreported")
	}

	a.Status = AppointmentStatusCompleted
	if !a.IsCompleted() || a.IsCancelled() {
		t.Error("completed appointment misreported")
	}
}
