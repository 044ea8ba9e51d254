package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_email"}

	if !isDuplicateKeyError(err, "email") {
		t.Error("should match unique violation on email constraint")
	}
	if isDuplicateKeyError(err, "license_number") {
		t.Error("should not match a different constraint")
	}
	if isDuplicateKeyError(errors.New("plain error"), "email") {
		t.Error("should not match a non-pg error")
	}
}

func TestIsDuplicateKeyErrorWrapped(t *testing.T) {
	inner := &pgconn.PgError{Code: "23505", ConstraintName: "idx_doctors_license_number"}
	wrapped := fmt.Errorf("create doctor: %w", inner)

	if !isDuplicateKeyError(wrapped, "license_number") {
		t.Error("should unwrap and match")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_patient"}

	if !isForeignKeyError(err, "patient") {
		t.Error("should match foreign key violation on patient constraint")
	}
	if !isAnyForeignKeyError(err) {
		t.Error("isAnyForeignKeyError should match any 23503")
	}
	if isAnyForeignKeyError(&pgconn.PgError{Code: "23505"}) {
		t.Error("isAnyForeignKeyError should not match a unique violation")
	}
}

func TestIsCheckViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23514", ConstraintName: "chk_appointments_duration_minutes"}

	if !isCheckViolation(err, "duration") {
		t.Error("should match check violation on duration constraint")
	}
	if isCheckViolation(err, "amount") {
		t.Error("should not match a different constraint")
	}
	if isCheckViolation(&pgconn.PgError{Code: "23503", ConstraintName: "duration"}, "duration") {
		t.Error("should not match a foreign key violation")
	}
}
