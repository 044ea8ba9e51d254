package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInvoiceMarkPaid(t *testing.T) {
	inv := &Invoice{AppointmentID: 1, Amount: decimal.NewFromInt(150)}
	if inv.Paid {
		t.Fatal("new invoice should be unpaid")
	}

	inv.MarkPaid()
	if !inv.Paid {
		t.Fatal("MarkPaid should flag the invoice as paid")
	}
}

func TestUserRoleIsValid(t *testing.T) {
	for _, r := range []UserRole{RoleAdmin, RoleDoctor, RoleReceptionist} {
		if !r.IsValid() {
			t.Errorf("expected role %q to be valid", r)
		}
	}
	for _, r := range []UserRole{"", "nurse", "Admin"} {
		if r.IsValid() {
			t.Errorf("expected role %q to be invalid", r)
		}
	}
}
