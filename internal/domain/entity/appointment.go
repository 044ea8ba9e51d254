package entity

import "time"

// AppointmentStatus represents the status of an appointment.
// No transition machine is enforced: any status may be set to any other.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked visit between a patient and a doctor.
// Deleting the patient or doctor is blocked while the appointment exists;
// deleting the room nulls RoomID.
type Appointment struct {
	ID                int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentNumber string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"appointment_number"`
	PatientID         int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID          int64             `gorm:"not null;index" json:"doctor_id"`
	RoomID            *int64            `gorm:"index" json:"room_id,omitempty"`
	AppointmentDate   time.Time         `gorm:"not null;index" json:"appointment_date"`
	DurationMinutes   int               `gorm:"not null;default:30;check:duration_minutes > 0" json:"duration_minutes"`
	Status            AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Room          *Room          `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:AppointmentID" json:"prescriptions,omitempty"`
	Invoice       *Invoice       `gorm:"foreignKey:AppointmentID" json:"invoice,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsUpcoming checks if the appointment is dated at or after the given time
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return !a.AppointmentDate.Before(now)
}

// UpcomingAppointment is a read-only row from the upcoming_appointments view.
// Patients and doctors are inner-joined, rooms are left-joined.
type UpcomingAppointment struct {
	AppointmentID     int64             `json:"appointment_id"`
	AppointmentNumber string            `json:"appointment_number"`
	AppointmentDate   time.Time         `json:"appointment_date"`
	DurationMinutes   int               `json:"duration_minutes"`
	Status            AppointmentStatus `json:"status"`
	PatientID         int64             `json:"patient_id"`
	PatientName       string            `json:"patient_name"`
	PatientPhone      string            `json:"patient_phone"`
	DoctorID          int64             `json:"doctor_id"`
	DoctorName        string            `json:"doctor_name"`
	RoomNumber        *string           `json:"room_number,omitempty"`
}

func (UpcomingAppointment) TableName() string {
	return "upcoming_appointments"
}
