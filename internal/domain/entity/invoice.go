package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents the bill for an appointment.
// Exactly one invoice may exist per appointment; rows are removed
// together with their appointment.
type Invoice struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int64           `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null;check:amount >= 0" json:"amount"`
	Paid          bool            `gorm:"not null;default:false" json:"paid"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// MarkPaid flags the invoice as settled
func (i *Invoice) MarkPaid() {
	i.Paid = true
}
