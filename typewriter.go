package main

import (
	"sync"
	"time"
)

// Typewriter reveals an already-complete text one rune per tick. The
// displayed buffer always begins with a single space, so for the text "OK"
// the frames are " ", " O", " OK". A new Start supersedes the previous
// reveal before the first new frame is delivered, so frames from two texts
// never interleave, and Stop cancels pending ticks when the hosting view
// goes away. Starting the same text twice in a row is a no-op.
type Typewriter struct {
	interval time.Duration
	onFrame  func(string)

	// emitMu serializes frame delivery. The generation is re-checked
	// under it right before onFrame runs, so a frame computed for a
	// superseded reveal is dropped instead of being delivered after a
	// newer reveal's frames. onFrame never runs concurrently with itself.
	emitMu sync.Mutex

	mu        sync.Mutex
	gen       int
	lastText  string
	displayed []rune
	typing    bool
	done      chan struct{}
}

// NewTypewriter creates a stopped typewriter. onFrame, if non-nil, is called
// with the full displayed buffer after every change, including the initial
// single-space frame.
func NewTypewriter(interval time.Duration, onFrame func(string)) *Typewriter {
	return &Typewriter{
		interval: interval,
		onFrame:  onFrame,
		done:     closedChan(),
	}
}

// Start begins revealing text, cancelling any reveal still in progress.
func (tw *Typewriter) Start(text string) {
	tw.mu.Lock()
	if text == tw.lastText {
		tw.mu.Unlock()
		return
	}
	tw.gen++
	gen := tw.gen
	tw.lastText = text
	tw.displayed = []rune{' '}
	tw.typing = true
	done := make(chan struct{})
	tw.done = done
	tw.mu.Unlock()

	go tw.run(gen, []rune(text), done)
}

// run emits the initial frame and then appends one rune per tick until the
// text is exhausted or a newer reveal has taken over. Buffer mutations
// happen under the mutex with a generation check; delivery goes through
// emit, which re-checks the generation so a frame held up by a slow
// consumer cannot land after a newer reveal's frames.
func (tw *Typewriter) run(gen int, text []rune, done chan struct{}) {
	defer close(done)

	tw.emit(gen, " ")

	ticker := time.NewTicker(tw.interval)
	defer ticker.Stop()

	idx := 0
	for range ticker.C {
		tw.mu.Lock()
		if gen != tw.gen {
			tw.mu.Unlock()
			return
		}
		if idx >= len(text) {
			tw.typing = false
			tw.mu.Unlock()
			return
		}
		tw.displayed = append(tw.displayed, text[idx])
		idx++
		frame := string(tw.displayed)
		finished := idx == len(text)
		if finished {
			tw.typing = false
		}
		tw.mu.Unlock()

		tw.emit(gen, frame)
		if finished {
			return
		}
	}
}

// Stop cancels the active reveal, if any. Safe to call repeatedly and after
// completion.
func (tw *Typewriter) Stop() {
	tw.mu.Lock()
	tw.gen++
	tw.typing = false
	tw.mu.Unlock()
}

// Snapshot returns the currently displayed buffer.
func (tw *Typewriter) Snapshot() string {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return string(tw.displayed)
}

// Typing reports whether a reveal is in flight.
func (tw *Typewriter) Typing() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.typing
}

// Done returns a channel closed when the current reveal goroutine exits,
// either by completing the text or by being superseded or stopped.
func (tw *Typewriter) Done() <-chan struct{} {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.done
}

// emit delivers one frame unless the reveal it belongs to has been
// superseded. The generation check must happen under emitMu: checking it
// earlier would leave a window where a stale frame slips in behind a newer
// reveal's delivery.
func (tw *Typewriter) emit(gen int, frame string) {
	if tw.onFrame == nil {
		return
	}
	tw.emitMu.Lock()
	defer tw.emitMu.Unlock()

	tw.mu.Lock()
	stale := gen != tw.gen
	tw.mu.Unlock()
	if stale {
		return
	}
	tw.onFrame(frame)
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
