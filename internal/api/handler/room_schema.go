package handler

import "time"

type createRoomRequest struct {
	Name       string  `json:"name"         validate:"required"`
	RoomTypeID string  `json:"room_type_id" validate:"required"`
	Price      float64 `json:"price"        validate:"required,gt=0"`
}

type updateRoomRequest struct {
	Name       string  `json:"name"         validate:"required"`
	RoomTypeID string  `json:"room_type_id" validate:"required"`
	Price      float64 `json:"price"        validate:"required,gt=0"`
}

// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type roomResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RoomTypeID string    `json:"room_type_id"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type listRoomsResponse struct {
	Data []roomResponse `json:"data"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
