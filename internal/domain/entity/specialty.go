package entity

// Specialty represents a medical specialty
type Specialty struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Doctors []Doctor `gorm:"many2many:doctor_specialties" json:"doctors,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// DoctorSpecialty is the junction row between doctors and specialties.
// Both sides cascade on delete.
type DoctorSpecialty struct {
	DoctorID    int64 `gorm:"primaryKey" json:"doctor_id"`
	SpecialtyID int64 `gorm:"primaryKey" json:"specialty_id"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialties"
}
