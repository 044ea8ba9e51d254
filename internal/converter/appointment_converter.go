package converter

import (
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                appointment.ID,
		AppointmentNumber: appointment.AppointmentNumber,
		PatientID:         appointment.PatientID,
		DoctorID:          appointment.DoctorID,
		RoomID:            appointment.RoomID,
		AppointmentDate:   appointment.AppointmentDate,
		DurationMinutes:   appointment.DurationMinutes,
		Status:            string(appointment.Status),
		Notes:             appointment.Notes,
		CreatedAt:         appointment.CreatedAt,
		UpdatedAt:         appointment.UpdatedAt,
	}

	// Include joined rows only when preloaded
	if appointment.Patient.ID != 0 {
		response.Patient = PatientToResponse(&appointment.Patient)
	}
	if appointment.Doctor.ID != 0 {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.Room != nil {
		response.Room = RoomToResponse(appointment.Room)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// UpcomingToResponse converts an upcoming_appointments view row to its DTO
func UpcomingToResponse(row *entity.UpcomingAppointment) *dto.UpcomingAppointmentResponse {
	if row == nil {
		return nil
	}

	return &dto.UpcomingAppointmentResponse{
		AppointmentID:     row.AppointmentID,
		AppointmentNumber: row.AppointmentNumber,
		AppointmentDate:   row.AppointmentDate,
		DurationMinutes:   row.DurationMinutes,
		Status:            string(row.Status),
		PatientID:         row.PatientID,
		PatientName:       row.PatientName,
		PatientPhone:      row.PatientPhone,
		DoctorID:          row.DoctorID,
		DoctorName:        row.DoctorName,
		RoomNumber:        row.RoomNumber,
	}
}

// UpcomingToResponses converts view rows to DTOs
func UpcomingToResponses(rows []entity.UpcomingAppointment) []dto.UpcomingAppointmentResponse {
	responses := make([]dto.UpcomingAppointmentResponse, len(rows))
	for i, row := range rows {
		resp := UpcomingToResponse(&row)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
