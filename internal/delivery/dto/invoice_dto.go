package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateInvoiceRequest carries the amount as a decimal string ("150.00").
// Zero is a valid amount; negative amounts are rejected.
type CreateInvoiceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Response DTOs

type InvoiceResponse struct {
	ID            int64           `json:"id"`
	AppointmentID int64           `json:"appointment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
