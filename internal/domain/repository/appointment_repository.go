package repository

import (
	"time"

	"clinic-booking-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByNumber(db *gorm.DB, appointmentNumber string) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error)
	FindByDateRange(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int64) error
	FindUpcoming(db *gorm.DB, limit int) ([]entity.UpcomingAppointment, error)
}
