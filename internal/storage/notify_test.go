package storage

import "testing"

func TestHubDeliversToMatchingUser(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	defer cancel()

	h.Publish(1, ChangeWorkouts)

	select {
	case c := <-ch:
		if c.Kind != ChangeWorkouts {
			t.Errorf("kind = %q, want %q", c.Kind, ChangeWorkouts)
		}
	default:
		t.Fatal("no change delivered")
	}
}

func TestHubSkipsOtherUsers(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	defer cancel()

	h.Publish(2, ChangeYogaLogs)

	select {
	case c := <-ch:
		t.Fatalf("unexpected delivery: %+v", c)
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("channel still open after cancel")
	}

	// Publishing after cancel must not panic.
	h.Publish(1, ChangeWorkouts)

	// Cancel is safe to call twice.
	cancel()
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	defer cancel()

	// Overfill the buffer; Publish must never block.
	for i := 0; i < 20; i++ {
		h.Publish(1, ChangeWorkouts)
	}

	n := 0
	for {
		select {
		case <-ch:
			n++
			continue
		default:
		}
		break
	}
	if n == 0 || n > 8 {
		t.Errorf("delivered %d changes, want 1..8", n)
	}
}
