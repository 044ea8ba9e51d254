package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int64  `json:"patient_id" validate:"required,min=1"`
	DoctorID        int64  `json:"doctor_id" validate:"required,min=1"`
	RoomID          *int64 `json:"room_id" validate:"omitempty,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	RoomID          *int64 `json:"room_id" validate:"omitempty,min=1"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                int64            `json:"id"`
	AppointmentNumber string           `json:"appointment_number"`
	PatientID         int64            `json:"patient_id"`
	DoctorID          int64            `json:"doctor_id"`
	RoomID            *int64           `json:"room_id,omitempty"`
	AppointmentDate   time.Time        `json:"appointment_date"`
	DurationMinutes   int              `json:"duration_minutes"`
	Status            string           `json:"status"`
	Notes             string           `json:"notes,omitempty"`
	Patient           *PatientResponse `json:"patient,omitempty"`
	Doctor            *DoctorResponse  `json:"doctor,omitempty"`
	Room              *RoomResponse    `json:"room,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type UpcomingAppointmentResponse struct {
	AppointmentID     int64     `json:"appointment_id"`
	AppointmentNumber string    `json:"appointment_number"`
	AppointmentDate   time.Time `json:"appointment_date"`
	DurationMinutes   int       `json:"duration_minutes"`
	Status            string    `json:"status"`
	PatientID         int64     `json:"patient_id"`
	PatientName       string    `json:"patient_name"`
	PatientPhone      string    `json:"patient_phone,omitempty"`
	DoctorID          int64     `json:"doctor_id"`
	DoctorName        string    `json:"doctor_name"`
	RoomNumber        *string   `json:"room_number,omitempty"`
}

type UpcomingAppointmentListResponse struct {
	Appointments []UpcomingAppointmentResponse `json:"appointments"`
	Total        int                           `json:"total"`
}
