package repository

import (
	"errors"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

type invoiceRepository struct{}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Create(invoice).Error
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id int64) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Where("appointment_id = ?", appointmentID).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

// MarkPaid atomically flags the invoice as paid ONLY if it is still unpaid.
// Returns affected rows: 1 = success, 0 = already paid or missing.
func (r *invoiceRepository) MarkPaid(db *gorm.DB, id int64) (int64, error) {
	result := db.Model(&entity.Invoice{}).
		Where("id = ? AND paid = ?", id, false).
		Update("paid", true)
	return result.RowsAffected, result.Error
}
