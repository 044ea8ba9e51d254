package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date, use RFC3339")
	ErrAppointmentInPast      = errors.New("cannot book an appointment in the past")
	ErrInvalidDuration        = errors.New("duration must be greater than zero")
	ErrInvalidStatus          = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)
	GetAppointmentByNumber(ctx context.Context, appointmentNumber string) (*dto.AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error)
	ListByDoctor(ctx context.Context, doctorID int64) (*dto.AppointmentListResponse, error)
	ListByDateRange(ctx context.Context, from, to time.Time) (*dto.AppointmentListResponse, error)
	ListUpcoming(ctx context.Context, limit int) (*dto.UpcomingAppointmentListResponse, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status entity.AppointmentStatus) error
	Reschedule(ctx context.Context, appointmentID int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	roomRepo        repository.RoomRepository
	viewCache       *service.ViewCacheService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	roomRepo repository.RoomRepository,
	viewCache *service.ViewCacheService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		roomRepo:        roomRepo,
		viewCache:       viewCache,
		auditService:    auditService,
	}
}

// CreateAppointment books a visit.
//
// Flow:
// 1. Parse and validate the date and duration
// 2. Validate patient, doctor, and optional room exist
// 3. Generate the appointment number
// 4. Insert; the engine re-checks the FK and duration constraints
// 5. Invalidate the upcoming-view cache
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if appointmentDate.Before(time.Now()) {
		return nil, ErrAppointmentInPast
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.RoomID != nil {
		room, err := u.roomRepo.FindByID(tx, *req.RoomID)
		if err != nil {
			u.log.Warnf("Failed to find room %d: %+v", *req.RoomID, err)
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
	}

	appointment := &entity.Appointment{
		AppointmentNumber: generateAppointmentNumber(appointmentDate),
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		RoomID:            req.RoomID,
		AppointmentDate:   appointmentDate,
		DurationMinutes:   req.DurationMinutes,
		Status:            entity.AppointmentStatusScheduled,
		Notes:             req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isCheckViolation(err, "duration") {
			return nil, ErrInvalidDuration
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, nil, appointment.AppointmentNumber); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.viewCache.Invalidate(ctx)

	// Reload with patient/doctor/room for the response
	fullAppointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || fullAppointment == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, number=%s, patient=%d, doctor=%d", appointment.ID, appointment.AppointmentNumber, req.PatientID, req.DoctorID)
	return converter.AppointmentToResponse(fullAppointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointmentByNumber(ctx context.Context, appointmentNumber string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByNumber(u.db.WithContext(ctx), appointmentNumber)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentNumber, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID int64) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByDateRange(ctx context.Context, from, to time.Time) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDateRange(u.db.WithContext(ctx), from, to)
	if err != nil {
		u.log.Warnf("Failed to list appointments between %s and %s: %+v", from, to, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ListUpcoming serves the upcoming_appointments view, Redis-cached with a
// short TTL. Cache failures fall through to the database.
func (u *appointmentUsecase) ListUpcoming(ctx context.Context, limit int) (*dto.UpcomingAppointmentListResponse, error) {
	rows, err := u.viewCache.GetUpcoming(ctx)
	if err != nil {
		u.log.Warnf("Upcoming-view cache read failed (non-fatal): %+v", err)
		rows = nil
	}

	if rows == nil {
		rows, err = u.appointmentRepo.FindUpcoming(u.db.WithContext(ctx), 0)
		if err != nil {
			u.log.Warnf("Failed to read upcoming appointments view: %+v", err)
			return nil, err
		}
		if err := u.viewCache.SetUpcoming(ctx, rows); err != nil {
			u.log.Warnf("Upcoming-view cache write failed (non-fatal): %+v", err)
		}
	}

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return &dto.UpcomingAppointmentListResponse{
		Appointments: converter.UpcomingToResponses(rows),
		Total:        len(rows),
	}, nil
}

// UpdateStatus sets the appointment status. Any status may replace any
// other; there is no transition machine.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID int64, status entity.AppointmentStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, status)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %d: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionAppointmentStatus, "appointment", appointmentID, nil, string(status)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.viewCache.Invalidate(ctx)

	u.log.Infof("Appointment status updated: id=%d, status=%s", appointmentID, status)
	return nil
}

func (u *appointmentUsecase) Reschedule(ctx context.Context, appointmentID int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if appointmentDate.Before(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.AppointmentDate = appointmentDate
	if req.DurationMinutes > 0 {
		appointment.DurationMinutes = req.DurationMinutes
	}
	if req.RoomID != nil {
		room, err := u.roomRepo.FindByID(db, *req.RoomID)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
		appointment.RoomID = req.RoomID
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		if isCheckViolation(err, "duration") {
			return nil, ErrInvalidDuration
		}
		u.log.Warnf("Failed to reschedule appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	u.viewCache.Invalidate(ctx)

	return converter.AppointmentToResponse(appointment), nil
}

// DeleteAppointment removes an appointment. Prescriptions and the invoice
// cascade in the engine.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(tx, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return err
	}

	actorID, _ := actorFromContext(ctx)
	if err := u.auditService.LogChange(tx, actorID, entity.AuditActionAppointmentDelete, "appointment", appointmentID, appointment.AppointmentNumber, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.viewCache.Invalidate(ctx)

	return nil
}

// generateAppointmentNumber generates a unique appointment number:
// AP-YYYYMMDD-XXXXXX
func generateAppointmentNumber(appointmentDate time.Time) string {
	dateStr := appointmentDate.Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	randomStr := fmt.Sprintf("%06X", randomBytes)
	return fmt.Sprintf("AP-%s-%s", dateStr, randomStr)
}
