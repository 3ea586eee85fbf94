package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, role string) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{Username: username, Role: role})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_ChangeRole(t *testing.T) {
	repo := newStubUserRepo()
	recorder := &stubRecorder{}
	svc := NewUserService(repo, recorder, zerolog.Nop())

	u := seedUser(t, repo, "alice", domain.RoleGuest)

	updated, err := svc.ChangeRole(context.Background(), u.ID, domain.RoleAdmin, "admin_1")
	if err != nil {
		t.Fatalf("ChangeRole failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %+v", updated)
	}
	if len(recorder.events) != 1 || recorder.events[0].Action != "user.role_change" {
		t.Fatalf("expected role change audit event, got %+v", recorder.events)
	}
}

func TestUserService_ChangeRole_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	u := seedUser(t, repo, "alice", domain.RoleGuest)

	if _, err := svc.ChangeRole(context.Background(), u.ID, "owner", "admin_1"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_ChangeRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.ChangeRole(context.Background(), "user_missing", domain.RoleAdmin, "admin_1"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	recorder := &stubRecorder{}
	svc := NewUserService(repo, recorder, zerolog.Nop())

	u := seedUser(t, repo, "alice", domain.RoleGuest)

	if err := svc.DeleteUser(context.Background(), u.ID, "admin_1"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := svc.GetUser(context.Background(), u.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected user gone, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), u.ID, "admin_1"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
	if len(recorder.events) != 1 || recorder.events[0].Action != "user.delete" {
		t.Fatalf("expected delete audit event, got %+v", recorder.events)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	seedUser(t, repo, "alice", domain.RoleAdmin)
	seedUser(t, repo, "bob", domain.RoleGuest)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
