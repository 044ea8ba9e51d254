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

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNumberExists = errors.New("room number already exists")
)

type RoomUsecase interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetRoom(ctx context.Context, roomID int64) (*dto.RoomResponse, error)
	ListRooms(ctx context.Context) (*dto.RoomListResponse, error)
	UpdateRoom(ctx context.Context, roomID int64, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID int64) error
}

type roomUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	roomRepo repository.RoomRepository
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
) RoomUsecase {
	return &roomUsecase{
		db:       db,
		log:      log,
		roomRepo: roomRepo,
	}
}

func (u *roomUsecase) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &entity.Room{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Notes:      req.Notes,
	}
	if room.Floor == 0 {
		room.Floor = 1
	}

	if err := u.roomRepo.Create(u.db.WithContext(ctx), room); err != nil {
		if isDuplicateKeyError(err, "room_number") {
			return nil, ErrRoomNumberExists
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) GetRoom(ctx context.Context, roomID int64) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %d: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) ListRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}

	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) UpdateRoom(ctx context.Context, roomID int64, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %d: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.RoomNumber != "" {
		room.RoomNumber = req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Notes != "" {
		room.Notes = req.Notes
	}

	if err := u.roomRepo.Update(u.db.WithContext(ctx), room); err != nil {
		if isDuplicateKeyError(err, "room_number") {
			return nil, ErrRoomNumberExists
		}
		u.log.Warnf("Failed to update room %d: %+v", roomID, err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

// DeleteRoom removes a room. Appointments keep existing: the engine nulls
// their room reference (ON DELETE SET NULL).
func (u *roomUsecase) DeleteRoom(ctx context.Context, roomID int64) error {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %d: %+v", roomID, err)
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}

	if err := u.roomRepo.Delete(u.db.WithContext(ctx), roomID); err != nil {
		u.log.Warnf("Failed to delete room %d: %+v", roomID, err)
		return err
	}

	return nil
}
