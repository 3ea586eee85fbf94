package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

// RoomTypeHandler handles HTTP requests for room type operations.
type RoomTypeHandler struct {
	service ports.RoomTypeService
}

func NewRoomTypeHandler(service ports.RoomTypeService) *RoomTypeHandler {
	return &RoomTypeHandler{service: service}
}

func toRoomTypeResponse(rt *domain.RoomType) roomTypeResponse {
	return roomTypeResponse{
		ID:        rt.ID,
		Name:      rt.Name,
		CreatedAt: rt.CreatedAt,
		UpdatedAt: rt.UpdatedAt,
	}
}

// List handles GET /api/v1/room-types.
//
// @Summary      List room types
// @Tags         room-types
// @Produce      json
// @Success      200  {object}  listRoomTypesResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/room-types [get]
func (h *RoomTypeHandler) List(c echo.Context) error {
	roomTypes, err := h.service.ListRoomTypes(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]roomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		data = append(data, toRoomTypeResponse(rt))
	}
	return c.JSON(http.StatusOK, listRoomTypesResponse{Data: data})
}

// Get handles GET /api/v1/room-types/:id.
//
// @Summary      Get a room type by id
// @Tags         room-types
// @Produce      json
// @Param        id   path      string  true  "Room type id"
// @Success      200  {object}  roomTypeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/room-types/{id} [get]
func (h *RoomTypeHandler) Get(c echo.Context) error {
	rt, err := h.service.GetRoomType(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomTypeResponse(rt))
}

// Create handles POST /api/v1/room-types. Admin only.
//
// @Summary      Create a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomTypeRequest  true  "Room type details"
// @Success      201   {object}  roomTypeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/room-types [post]
func (h *RoomTypeHandler) Create(c echo.Context) error {
	var req roomTypeRequest
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

	rt, err := h.service.CreateRoomType(c.Request().Context(), req.Name, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoomTypeResponse(rt))
}

// Update handles PUT /api/v1/room-types/:id. Admin only.
//
// @Summary      Update a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Room type id"
// @Param        body  body      roomTypeRequest  true  "Room type details"
// @Success      200   {object}  roomTypeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/room-types/{id} [put]
func (h *RoomTypeHandler) Update(c echo.Context) error {
	var req roomTypeRequest
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

	rt, err := h.service.UpdateRoomType(c.Request().Context(), c.Param("id"), req.Name, actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomTypeResponse(rt))
}

// Delete handles DELETE /api/v1/room-types/:id. Admin only.
//
// @Summary      Delete a room type
// @Tags         room-types
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room type id"
// @Success      200  {object}  deletedResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/v1/room-types/{id} [delete]
func (h *RoomTypeHandler) Delete(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRoomType(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "room type deleted"})
}
