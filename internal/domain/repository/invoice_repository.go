package repository

import (
	"clinic-booking-service/internal/domain/entity"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindByID(db *gorm.DB, id int64) (*entity.Invoice, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.Invoice, error)
	MarkPaid(db *gorm.DB, id int64) (int64, error)
}
