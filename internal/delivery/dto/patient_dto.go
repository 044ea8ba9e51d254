package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=2,max=255"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string  `json:"gender" validate:"required,oneof=M F O"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone" validate:"omitempty,max=20"`
}

type UpdatePatientRequest struct {
	FullName    string  `json:"full_name" validate:"omitempty,min=2,max=255"`
	DateOfBirth string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string  `json:"gender" validate:"omitempty,oneof=M F O"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone" validate:"omitempty,max=20"`
}

// Response DTOs

type PatientResponse struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Email       *string   `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
