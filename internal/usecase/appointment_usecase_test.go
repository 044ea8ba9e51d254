package usecase

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateAppointmentNumberFormat(t *testing.T) {
	date := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	number := generateAppointmentNumber(date)

	pattern := regexp.MustCompile(`^AP-20260914-[0-9A-F]{6}$`)
	if !pattern.MatchString(number) {
		t.Errorf("appointment number %q does not match expected format", number)
	}
}

func TestGenerateAppointmentNumberUniqueness(t *testing.T) {
	date := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := generateAppointmentNumber(date)
		if seen[n] {
			t.Fatalf("duplicate appointment number generated: %s", n)
		}
		seen[n] = true
	}
}

func TestGenerateAppointmentNumberUsesAppointmentDate(t *testing.T) {
	date := time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC)
	number := generateAppointmentNumber(date)
	if !strings.HasPrefix(number, "AP-20270102-") {
		t.Errorf("appointment number %q should embed the appointment date", number)
	}
}
