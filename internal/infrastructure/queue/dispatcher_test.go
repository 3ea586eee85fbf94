package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomdesk/booking-api/internal/core/ports"
)

type captureAuditService struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
	done   chan struct{}
	want   int
}

func newCaptureAuditService(want int) *captureAuditService {
	return &captureAuditService{done: make(chan struct{}), want: want}
}

func (s *captureAuditService) Process(_ context.Context, event ports.AuditEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *captureAuditService) wait(t *testing.T) []ports.AuditEventInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.AuditEventInput, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := newCaptureAuditService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, action := range []string{"room.create", "room.update", "room.delete"} {
		d.Record(ports.AuditEventInput{ActorID: "admin_1", Action: action, Resource: "rooms"})
	}

	got := svc.wait(t)
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
}

func TestDispatcher_PerActorOrdering(t *testing.T) {
	const n = 50
	svc := newCaptureAuditService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All events for one actor land on one worker, so their relative
	// order must survive.
	for i := 0; i < n; i++ {
		d.Record(ports.AuditEventInput{
			ActorID:    "admin_1",
			Action:     "room.update",
			ResourceID: "room_" + string(rune('a'+i%26)) + "_" + time.Now().Format("150405"),
			Timestamp:  time.Unix(int64(i), 0),
		})
	}

	got := svc.wait(t)
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.Before(got[i-1].Timestamp) {
			t.Fatalf("event %d out of order: %v before %v", i, got[i].Timestamp, got[i-1].Timestamp)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())

	first := d.shardIndex("admin_1")
	for i := 0; i < 100; i++ {
		if d.shardIndex("admin_1") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
