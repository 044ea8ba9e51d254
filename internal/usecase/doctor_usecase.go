package usecase

import (
	"context"
	"errors"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrLicenseAlreadyExists    = errors.New("license number already exists")
	ErrDoctorHasAppointments   = errors.New("doctor still has appointments")
	ErrSpecialtyNotAssigned    = errors.New("specialty is not assigned to this doctor")
	ErrSpecialtyAlreadyAssigned = errors.New("specialty is already assigned to this doctor")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, page, limit int) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID int64) error
	AssignSpecialty(ctx context.Context, doctorID, specialtyID int64) error
	UnassignSpecialty(ctx context.Context, doctorID, specialtyID int64) error
	ListSpecialtiesForDoctor(ctx context.Context, doctorID int64) (*dto.SpecialtyListResponse, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		FullName:      req.FullName,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionDoctorCreate, "doctor", doctor.ID, nil, doctor.FullName); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, page, limit int) (*dto.DoctorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.FullName != "" {
		doctor.FullName = req.FullName
	}
	if req.LicenseNumber != "" {
		doctor.LicenseNumber = req.LicenseNumber
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}

	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to update doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes a doctor. The engine blocks the delete while
// appointments reference the row; junction rows cascade and any linked
// user account keeps working with a nulled doctor link.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorRepo.Delete(tx, doctorID); err != nil {
		if isAnyForeignKeyError(err) {
			return ErrDoctorHasAppointments
		}
		u.log.Warnf("Failed to delete doctor %d: %+v", doctorID, err)
		return err
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionDoctorDelete, "doctor", doctorID, doctor.FullName, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorUsecase) AssignSpecialty(ctx context.Context, doctorID, specialtyID int64) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	specialty, err := u.specialtyRepo.FindByID(db, specialtyID)
	if err != nil {
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	if err := u.doctorRepo.AttachSpecialty(db, doctorID, specialtyID); err != nil {
		if isDuplicateKeyError(err, "doctor_specialties") {
			return ErrSpecialtyAlreadyAssigned
		}
		u.log.Warnf("Failed to assign specialty %d to doctor %d: %+v", specialtyID, doctorID, err)
		return err
	}

	return nil
}

func (u *doctorUsecase) UnassignSpecialty(ctx context.Context, doctorID, specialtyID int64) error {
	affected, err := u.doctorRepo.DetachSpecialty(u.db.WithContext(ctx), doctorID, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to unassign specialty %d from doctor %d: %+v", specialtyID, doctorID, err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotAssigned
	}
	return nil
}

func (u *doctorUsecase) ListSpecialtiesForDoctor(ctx context.Context, doctorID int64) (*dto.SpecialtyListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialties, err := u.doctorRepo.FindSpecialties(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list specialties for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}
