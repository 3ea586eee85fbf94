package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/api"
	"github.com/roomdesk/booking-api/internal/api/handler"
	"github.com/roomdesk/booking-api/internal/api/middleware"
	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
	"github.com/roomdesk/booking-api/internal/core/service"
)

// stubRoomService is an in-memory RoomService. Ids that are not 24 hex
// characters are rejected the same way the persistence layer does.
type stubRoomService struct {
	rooms  map[string]*domain.Room
	nextID int
}

func newStubRoomService() *stubRoomService {
	return &stubRoomService{rooms: make(map[string]*domain.Room)}
}

func validObjectID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func (s *stubRoomService) CreateRoom(_ context.Context, input ports.CreateRoomInput, _ string) (*domain.Room, error) {
	s.nextID++
	now := time.Now().UTC()
	room := &domain.Room{
		ID:         strings.Repeat("0", 24-len(strconv.Itoa(s.nextID))) + strconv.Itoa(s.nextID),
		Name:       input.Name,
		RoomTypeID: input.RoomTypeID,
		Price:      input.Price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.rooms[room.ID] = room
	return room, nil
}

func (s *stubRoomService) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	if !validObjectID(id) {
		return nil, domain.ErrInvalidID
	}
	if room, ok := s.rooms[id]; ok {
		return room, nil
	}
	return nil, domain.ErrRoomNotFound
}

func (s *stubRoomService) ListRooms(_ context.Context, _ ports.RoomFilter) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (s *stubRoomService) UpdateRoom(_ context.Context, input ports.UpdateRoomInput, _ string) (*domain.Room, error) {
	if !validObjectID(input.ID) {
		return nil, domain.ErrInvalidID
	}
	room, ok := s.rooms[input.ID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	room.Name = input.Name
	room.RoomTypeID = input.RoomTypeID
	room.Price = input.Price
	room.UpdatedAt = time.Now().UTC()
	return room, nil
}

func (s *stubRoomService) DeleteRoom(_ context.Context, id, _ string) error {
	if !validObjectID(id) {
		return domain.ErrInvalidID
	}
	if _, ok := s.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(s.rooms, id)
	return nil
}

// newRoomTestServer wires the room routes exactly as the router does:
// public reads, admin-gated mutations, domain errors resolved centrally.
func newRoomTestServer(svc ports.RoomService, tokens *service.TokenService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	authRequired := middleware.Auth(tokens, nil)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	h := handler.NewRoomHandler(svc)
	e.GET("/rooms", h.List)
	e.GET("/rooms/:id", h.Get)
	e.POST("/rooms", h.Create, authRequired, adminOnly)
	e.PUT("/rooms/:id", h.Update, authRequired, adminOnly)
	e.DELETE("/rooms/:id", h.Delete, authRequired, adminOnly)
	return e
}

func bearerFor(t *testing.T, tokens *service.TokenService, role string) string {
	t.Helper()
	signed, err := tokens.Issue(&domain.User{ID: "64f1b2a3c4d5e6f708192a3b", Username: "tester", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + signed
}

func doRoomRequest(e *echo.Echo, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const roomBody = `{"name":"Room 101","room_type_id":"64f1b2a3c4d5e6f708192a99","price":120.5}`

func TestRooms_Create_NoToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	rec := doRoomRequest(e, http.MethodPost, "/rooms", roomBody, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_Create_GuestForbidden(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	rec := doRoomRequest(e, http.MethodPost, "/rooms", roomBody, bearerFor(t, tokens, domain.RoleGuest))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_Create_Admin(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	svc := newStubRoomService()
	e := newRoomTestServer(svc, tokens)

	rec := doRoomRequest(e, http.MethodPost, "/rooms", roomBody, bearerFor(t, tokens, domain.RoleAdmin))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.rooms) != 1 {
		t.Fatalf("room not stored")
	}
}

func TestRooms_Create_ValidationError(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	rec := doRoomRequest(e, http.MethodPost, "/rooms",
		`{"name":"Room 101","room_type_id":"64f1b2a3c4d5e6f708192a99","price":0}`,
		bearerFor(t, tokens, domain.RoleAdmin))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-positive price, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_Get_Public(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	svc := newStubRoomService()
	e := newRoomTestServer(svc, tokens)

	created, _ := svc.CreateRoom(context.Background(), ports.CreateRoomInput{
		Name: "Room 101", RoomTypeID: "64f1b2a3c4d5e6f708192a99", Price: 100,
	}, "seed")

	// No Authorization header at all: reads stay public.
	rec := doRoomRequest(e, http.MethodGet, "/rooms/"+created.ID, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_Get_NotFound(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	rec := doRoomRequest(e, http.MethodGet, "/rooms/64f1b2a3c4d5e6f708192a00", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_Get_MalformedID(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	rec := doRoomRequest(e, http.MethodGet, "/rooms/not-an-id", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_List_BadPriceParam(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	rec := doRoomRequest(e, http.MethodGet, "/rooms?min_price=cheap", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_Update_Admin(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	svc := newStubRoomService()
	e := newRoomTestServer(svc, tokens)

	created, _ := svc.CreateRoom(context.Background(), ports.CreateRoomInput{
		Name: "Room 101", RoomTypeID: "64f1b2a3c4d5e6f708192a99", Price: 100,
	}, "seed")

	rec := doRoomRequest(e, http.MethodPut, "/rooms/"+created.ID,
		`{"name":"Room 101 Deluxe","room_type_id":"64f1b2a3c4d5e6f708192a99","price":150}`,
		bearerFor(t, tokens, domain.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.rooms[created.ID].Name != "Room 101 Deluxe" {
		t.Fatalf("room not updated: %+v", svc.rooms[created.ID])
	}
}

func TestRooms_Delete_Admin(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	svc := newStubRoomService()
	e := newRoomTestServer(svc, tokens)

	created, _ := svc.CreateRoom(context.Background(), ports.CreateRoomInput{
		Name: "Room 101", RoomTypeID: "64f1b2a3c4d5e6f708192a99", Price: 100,
	}, "seed")

	rec := doRoomRequest(e, http.MethodDelete, "/rooms/"+created.ID, "", bearerFor(t, tokens, domain.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRoomRequest(e, http.MethodDelete, "/rooms/"+created.ID, "", bearerFor(t, tokens, domain.RoleAdmin))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRooms_ForeignTokenRejected(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	e := newRoomTestServer(newStubRoomService(), tokens)

	// Tokens from a rotated secret must not pass.
	other := service.NewTokenService("rotated", time.Hour)
	rec := doRoomRequest(e, http.MethodPost, "/rooms", roomBody, bearerFor(t, other, domain.RoleAdmin))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}
