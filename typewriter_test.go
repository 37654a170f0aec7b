package main

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// frameRecorder collects typewriter frames from the reveal goroutine.
type frameRecorder struct {
	mu     sync.Mutex
	frames []string
}

func (r *frameRecorder) record(frame string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *frameRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

func waitForReveal(t *testing.T, tw *Typewriter) {
	t.Helper()
	select {
	case <-tw.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reveal to finish")
	}
}

func TestTypewriterFrameSequence(t *testing.T) {
	rec := &frameRecorder{}
	tw := NewTypewriter(time.Millisecond, rec.record)

	tw.Start("OK")
	waitForReveal(t, tw)

	want := []string{" ", " O", " OK"}
	frames := rec.snapshot()
	if len(frames) != len(want) {
		t.Fatalf("got %d frames (%q), want %d", len(frames), frames, len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frames[%d] = %q, want %q", i, frames[i], want[i])
		}
	}

	if tw.Typing() {
		t.Error("expected typing to be finished")
	}
	if got := tw.Snapshot(); got != " OK" {
		t.Errorf("Snapshot() = %q, want %q", got, " OK")
	}
}

func TestTypewriterNoChangeAfterCompletion(t *testing.T) {
	rec := &frameRecorder{}
	tw := NewTypewriter(time.Millisecond, rec.record)

	tw.Start("hi")
	waitForReveal(t, tw)

	before := len(rec.snapshot())
	time.Sleep(10 * time.Millisecond)
	if after := len(rec.snapshot()); after != before {
		t.Errorf("expected no frames after completion, got %d extra", after-before)
	}
}

func TestTypewriterSameTextIsNoOp(t *testing.T) {
	rec := &frameRecorder{}
	tw := NewTypewriter(time.Millisecond, rec.record)

	tw.Start("OK")
	waitForReveal(t, tw)

	before := len(rec.snapshot())
	tw.Start("OK")
	time.Sleep(10 * time.Millisecond)
	if after := len(rec.snapshot()); after != before {
		t.Errorf("expected repeated Start with the same text to be a no-op, got %d extra frames", after-before)
	}
}

func TestTypewriterRestartDoesNotInterleave(t *testing.T) {
	rec := &frameRecorder{}
	tw := NewTypewriter(5*time.Millisecond, rec.record)

	first := strings.Repeat("A", 40)
	tw.Start(first)
	time.Sleep(20 * time.Millisecond)

	tw.Start("BB")
	waitForReveal(t, tw)

	for _, frame := range rec.snapshot() {
		fromFirst := strings.HasPrefix(" "+first, frame)
		fromSecond := strings.HasPrefix(" BB", frame)
		if !fromFirst && !fromSecond {
			t.Fatalf("frame %q mixes characters from two reveals", frame)
		}
	}

	if got := tw.Snapshot(); got != " BB" {
		t.Errorf("Snapshot() = %q, want %q", got, " BB")
	}
}

func TestTypewriterSlowConsumerRestartDropsStaleFrames(t *testing.T) {
	rec := &frameRecorder{}
	release := make(chan struct{})
	staleInFlight := make(chan struct{})
	var once sync.Once

	// The consumer blocks while delivering the first text's " A" frame,
	// like an SSE write stalling right as the reveal is restarted.
	tw := NewTypewriter(time.Millisecond, func(frame string) {
		if frame == " A" {
			once.Do(func() {
				close(staleInFlight)
				<-release
			})
		}
		rec.record(frame)
	})

	tw.Start("AAAA")
	select {
	case <-staleInFlight:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the first frame delivery to block")
	}

	tw.Start("BB")
	close(release)
	waitForReveal(t, tw)

	frames := rec.snapshot()
	restart := -1
	for i, frame := range frames {
		if i > 0 && frame == " " {
			restart = i
			break
		}
	}
	if restart == -1 {
		t.Fatalf("restarted reveal never delivered its initial frame, frames: %q", frames)
	}
	for _, frame := range frames[restart:] {
		if strings.ContainsRune(frame, 'A') {
			t.Fatalf("frame %q from the superseded text was delivered after the restarted reveal began", frame)
		}
	}
	if last := frames[len(frames)-1]; last != " BB" {
		t.Errorf("last frame = %q, want %q", last, " BB")
	}
}

func TestTypewriterStopCancelsPendingTicks(t *testing.T) {
	rec := &frameRecorder{}
	tw := NewTypewriter(5*time.Millisecond, rec.record)

	tw.Start(strings.Repeat("x", 100))
	time.Sleep(20 * time.Millisecond)
	tw.Stop()
	waitForReveal(t, tw)

	before := len(rec.snapshot())
	time.Sleep(20 * time.Millisecond)
	if after := len(rec.snapshot()); after != before {
		t.Errorf("expected no frames after Stop, got %d extra", after-before)
	}
	if tw.Typing() {
		t.Error("expected typing to be false after Stop")
	}
	// Stop again must be safe.
	tw.Stop()
}
