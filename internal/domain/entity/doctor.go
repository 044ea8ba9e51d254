package entity

import "time"

// Doctor represents a practicing doctor
type Doctor struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName      string    `gorm:"type:varchar(255);not null" json:"full_name"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email         string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialties  []Specialty   `gorm:"many2many:doctor_specialties" json:"specialties,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
