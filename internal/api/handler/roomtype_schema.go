package handler

import "time"

type roomTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type roomTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listRoomTypesResponse struct {
	Data []roomTypeResponse `json:"data"`
}
