package repository

import (
	"clinic-booking-service/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByLicenseNumber(db *gorm.DB, licenseNumber string) (*entity.Doctor, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Doctor, int64, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int64) error
	AttachSpecialty(db *gorm.DB, doctorID, specialtyID int64) error
	DetachSpecialty(db *gorm.DB, doctorID, specialtyID int64) (int64, error)
	FindSpecialties(db *gorm.DB, doctorID int64) ([]entity.Specialty, error)
}
