package dto

// Request DTOs

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	Floor      int    `json:"floor" validate:"omitempty,min=0"`
	Notes      string `json:"notes" validate:"omitempty"`
}

type UpdateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"omitempty,max=20"`
	Floor      *int   `json:"floor" validate:"omitempty,min=0"`
	Notes      string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type RoomResponse struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
	Floor      int    `json:"floor"`
	Notes      string `json:"notes,omitempty"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
