package domain

import (
	"errors"
	"time"
)

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomTypeNotFound = errors.New("room type not found")
var ErrRoomTypeExists = errors.New("room type already exists")
var ErrRoomTypeInUse = errors.New("room type is referenced by rooms")
var ErrInvalidID = errors.New("invalid resource id")
var ErrForbidden = errors.New("access forbidden")

// RoomType is a catalog category rooms reference (e.g. "single", "suite").
// Names are unique.
type RoomType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room is a bookable unit in the catalog.
type Room struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RoomTypeID string    `json:"room_type_id"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
