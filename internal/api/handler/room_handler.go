package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		ID:         r.ID,
		Name:       r.Name,
		RoomTypeID: r.RoomTypeID,
		Price:      r.Price,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// List handles GET /api/v1/rooms with optional filter parameters.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        search     query     string  false  "Partial room name (case-insensitive)"
// @Param        room_type  query     string  false  "Room type id"
// @Param        min_price  query     number  false  "Minimum price"
// @Param        max_price  query     number  false  "Maximum price"
// @Success      200        {object}  listRoomsResponse
// @Failure      400        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	filter := ports.RoomFilter{
		Search:     c.QueryParam("search"),
		RoomTypeID: c.QueryParam("room_type"),
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "min_price must be a number")
		}
		filter.MinPrice = v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "max_price must be a number")
		}
		filter.MaxPrice = v
	}

	rooms, err := h.service.ListRooms(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	data := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		data = append(data, toRoomResponse(r))
	}
	return c.JSON(http.StatusOK, listRoomsResponse{Data: data})
}

// Get handles GET /api/v1/rooms/:id.
//
// @Summary      Get a room by id
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Create handles POST /api/v1/rooms. Admin only.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	room, err := h.service.CreateRoom(c.Request().Context(), ports.CreateRoomInput{
		Name:       req.Name,
		RoomTypeID: req.RoomTypeID,
		Price:      req.Price,
	}, actorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// Update handles PUT /api/v1/rooms/:id. Admin only.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room id"
// @Param        body  body      updateRoomRequest  true  "Room details"
// @Success      200   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	room, err := h.service.UpdateRoom(c.Request().Context(), ports.UpdateRoomInput{
		ID:         c.Param("id"),
		Name:       req.Name,
		RoomTypeID: req.RoomTypeID,
		Price:      req.Price,
	}, actorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Delete handles DELETE /api/v1/rooms/:id. Admin only.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  deletedResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRoom(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "room deleted"})
}
