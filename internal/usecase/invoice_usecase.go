package usecase

import (
	"context"
	"errors"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceExists      = errors.New("appointment already has an invoice")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
)

type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, appointmentID int64, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, invoiceID int64) (*dto.InvoiceResponse, error)
	GetInvoiceByAppointment(ctx context.Context, appointmentID int64) (*dto.InvoiceResponse, error)
	PayInvoice(ctx context.Context, invoiceID int64) (*dto.InvoiceResponse, error)
}

type invoiceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	invoiceRepo     repository.InvoiceRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewInvoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) InvoiceUsecase {
	return &invoiceUsecase{
		db:              db,
		log:             log,
		invoiceRepo:     invoiceRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// CreateInvoice bills an appointment. An appointment carries at most one
// invoice; a second attempt fails with ErrInvoiceExists. A zero amount is
// allowed, negative amounts are not.
func (u *invoiceUsecase) CreateInvoice(ctx context.Context, appointmentID int64, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.Amount.LessThan(decimal.Zero) {
		return nil, ErrNegativeAmount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	invoice := &entity.Invoice{
		AppointmentID: appointmentID,
		Amount:        req.Amount,
		Paid:          false,
	}

	if err := u.invoiceRepo.Create(tx, invoice); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrInvoiceExists
		}
		if isCheckViolation(err, "amount") {
			return nil, ErrNegativeAmount
		}
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionInvoiceCreate, "invoice", invoice.ID, nil, req.Amount.String()); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Invoice created: id=%d, appointment=%d, amount=%s", invoice.ID, appointmentID, req.Amount.String())
	return converter.InvoiceToResponse(invoice), nil
}

func (u *invoiceUsecase) GetInvoice(ctx context.Context, invoiceID int64) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), invoiceID)
	if err != nil {
		u.log.Warnf("Failed to find invoice %d: %+v", invoiceID, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *invoiceUsecase) GetInvoiceByAppointment(ctx context.Context, appointmentID int64) (*dto.InvoiceResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	invoice, err := u.invoiceRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find invoice for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}

// PayInvoice flips the paid flag exactly once. The repository update is
// conditional on paid = false, so concurrent payments race safely: the
// loser sees zero affected rows.
func (u *invoiceUsecase) PayInvoice(ctx context.Context, invoiceID int64) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, invoiceID)
	if err != nil {
		u.log.Warnf("Failed to find invoice %d: %+v", invoiceID, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	affected, err := u.invoiceRepo.MarkPaid(tx, invoiceID)
	if err != nil {
		u.log.Warnf("Failed to mark invoice %d paid: %+v", invoiceID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvoiceAlreadyPaid
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionInvoicePaid, "invoice", invoiceID, false, true); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	invoice.MarkPaid()
	u.log.Infof("Invoice paid: id=%d", invoiceID)
	return converter.InvoiceToResponse(invoice), nil
}
