package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingNotifier struct {
	mu       sync.Mutex
	welcomes []string
	failures int
	fail     bool
}

func (n *recordingNotifier) SendWelcome(_ context.Context, email, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		n.failures++
		return errors.New("smtp down")
	}
	n.welcomes = append(n.welcomes, email)
	return nil
}

func (n *recordingNotifier) SendDeactivationNotice(_ context.Context, email, _ string) error {
	return n.SendWelcome(context.Background(), email, "")
}

func (n *recordingNotifier) SendReservationConfirmation(_ context.Context, email, _, _ string, _ time.Time) error {
	return n.SendWelcome(context.Background(), email, "")
}

func (n *recordingNotifier) SendReservationReminder(_ context.Context, email, _, _ string, _ time.Time) error {
	return n.SendWelcome(context.Background(), email, "")
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.welcomes)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherDeliversThroughDelegate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delegate := &recordingNotifier{}
	d := NewDispatcher(2, delegate, zerolog.Nop())
	d.Start(ctx)

	if err := d.SendWelcome(ctx, "ana@example.com", "ana"); err != nil {
		t.Fatalf("SendWelcome: %v", err)
	}
	if err := d.SendReservationConfirmation(ctx, "ben@example.com", "ben", "Jorge", time.Now()); err != nil {
		t.Fatalf("SendReservationConfirmation: %v", err)
	}

	waitFor(t, func() bool { return delegate.count() == 2 })
}

func TestDispatcherShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(4, &recordingNotifier{}, zerolog.Nop())

	first := d.shardIndex("ana@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("ana@example.com"); got != first {
			t.Fatalf("shard moved: got %d, want %d", got, first)
		}
	}
}

func TestDispatcherSwallowsDelegateFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delegate := &recordingNotifier{fail: true}
	d := NewDispatcher(1, delegate, zerolog.Nop())
	d.Start(ctx)

	if err := d.SendWelcome(ctx, "ana@example.com", "ana"); err != nil {
		t.Fatalf("enqueue should never fail: %v", err)
	}

	waitFor(t, func() bool {
		delegate.mu.Lock()
		defer delegate.mu.Unlock()
		return delegate.failures == 1
	})
}
