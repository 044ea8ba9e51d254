package dto

import "time"

// Request DTOs

type CreatePrescriptionRequest struct {
	Medication string `json:"medication" validate:"required,max=255"`
	Dosage     string `json:"dosage" validate:"required,max=100"`
	Frequency  string `json:"frequency" validate:"required,max=100"`
	Notes      string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointment_id"`
	Medication    string    `json:"medication"`
	Dosage        string    `json:"dosage"`
	Frequency     string    `json:"frequency"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
