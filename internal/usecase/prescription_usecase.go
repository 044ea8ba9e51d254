package usecase

import (
	"context"
	"errors"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, appointmentID int64, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, prescriptionID int64) (*dto.PrescriptionResponse, error)
	ListByAppointment(ctx context.Context, appointmentID int64) (*dto.PrescriptionListResponse, error)
	DeletePrescription(ctx context.Context, prescriptionID int64) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, appointmentID int64, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	prescription := &entity.Prescription{
		AppointmentID: appointmentID,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		Frequency:     req.Frequency,
		Notes:         req.Notes,
	}

	if err := u.prescriptionRepo.Create(db, prescription); err != nil {
		if isForeignKeyError(err, "appointment_id") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.log.Infof("Prescription created: id=%d, appointment=%d, medication=%s", prescription.ID, appointmentID, req.Medication)
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, prescriptionID int64) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", prescriptionID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListByAppointment(ctx context.Context, appointmentID int64) (*dto.PrescriptionListResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	prescriptions, err := u.prescriptionRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, prescriptionID int64) error {
	db := u.db.WithContext(ctx)

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", prescriptionID, err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	if err := u.prescriptionRepo.Delete(db, prescriptionID); err != nil {
		u.log.Warnf("Failed to delete prescription %d: %+v", prescriptionID, err)
		return err
	}

	return nil
}
