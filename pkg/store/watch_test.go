package store

import (
	"context"
	"testing"
	"time"
)

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save("calendar-state", []byte(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if c.Key == "" || c.Key == "calendar-state" {
				return
			}
			t.Fatalf("unexpected key %q", c.Key)
		case <-deadline:
			t.Fatal("timed out waiting for change")
		}
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	p, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestChangeThrottleCoalesces(t *testing.T) {
	th := newChangeThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Change, 8)
	send := func(c Change) { got <- c }
	for i := 0; i < 5; i++ {
		th.Enqueue(Change{Key: "calendar-state"}, send)
	}

	select {
	case c := <-got:
		if c.Key != "calendar-state" {
			t.Fatalf("unexpected key %q", c.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case c := <-got:
		t.Fatalf("expected a single coalesced change, got extra %+v", c)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestChangeTouches(t *testing.T) {
	if !(Change{Key: "calendar-state"}).Touches("calendar-state") {
		t.Fatalf("expected matching key to touch")
	}
	if (Change{Key: "other"}).Touches("calendar-state") {
		t.Fatalf("expected other key not to touch")
	}
	if !(Change{}).Touches("calendar-state") {
		t.Fatalf("expected empty key to touch every key")
	}
}
