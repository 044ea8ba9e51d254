package entity

// Room represents an examination room
type Room struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	Floor      int    `gorm:"not null;default:1" json:"floor"`
	Notes      string `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:RoomID" json:"appointments,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
