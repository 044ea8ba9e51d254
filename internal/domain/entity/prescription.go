package entity

import "time"

// Prescription represents medication prescribed during an appointment.
// Rows are removed together with their appointment.
type Prescription struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int64     `gorm:"not null;index" json:"appointment_id"`
	Medication    string    `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage        string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency     string    `gorm:"type:varchar(100);not null" json:"frequency"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
