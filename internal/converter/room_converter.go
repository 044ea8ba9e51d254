package converter

import (
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
)

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:         room.ID,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Notes:      room.Notes,
	}
}

// RoomsToResponses converts a slice of Room entities to DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		resp := RoomToResponse(&room)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
