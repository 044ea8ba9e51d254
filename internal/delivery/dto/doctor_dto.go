package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	FullName      string `json:"full_name" validate:"required,min=2,max=255"`
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type UpdateDoctorRequest struct {
	FullName      string `json:"full_name" validate:"omitempty,min=2,max=255"`
	LicenseNumber string `json:"license_number" validate:"omitempty,max=50"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type AssignSpecialtyRequest struct {
	SpecialtyID int64 `json:"specialty_id" validate:"required,min=1"`
}

// Response DTOs

type DoctorResponse struct {
	ID            int64               `json:"id"`
	FullName      string              `json:"full_name"`
	LicenseNumber string              `json:"license_number"`
	Phone         string              `json:"phone,omitempty"`
	Email         string              `json:"email,omitempty"`
	Specialties   []SpecialtyResponse `json:"specialties,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
