package repository

import (
	"clinic-booking-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id int64) (*entity.Prescription, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int64) ([]entity.Prescription, error)
	Delete(db *gorm.DB, id int64) error
}
