package entity

import "time"

// Patient represents a registered clinic patient
type Patient struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	DateOfBirth time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string     `gorm:"type:char(1);not null" json:"gender"`
	Email       *string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)
