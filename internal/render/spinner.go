package render

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a single-line progress indicator while a generation
// request is in flight. The message is fixed for the spinner's lifetime.
type Spinner struct {
	writer  io.Writer
	message string

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewSpinner creates a spinner that displays message next to the animation.
func NewSpinner(writer io.Writer, message string) *Spinner {
	return &Spinner{
		writer:  writer,
		message: message,
	}
}

// Start begins animating and returns a stop function. The stop function
// blocks until the line has been cleared, so output written afterwards
// starts on a clean line.
func (s *Spinner) Start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return func() { cancel() }
	}
	s.running = true
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go s.animate(ctx)

	return func() {
		cancel()
		<-done
	}
}

func (s *Spinner) animate(ctx context.Context) {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame := 0
	s.render(frame)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprint(s.writer, "\r\033[K")
			s.mu.Lock()
			s.running = false
			done := s.done
			s.mu.Unlock()
			close(done)
			return
		case <-ticker.C:
			frame = (frame + 1) % len(spinnerFrames)
			s.render(frame)
		}
	}
}

func (s *Spinner) render(frame int) {
	line := WarningStyle.Render(spinnerFrames[frame])
	if s.message != "" {
		line += " " + s.message
	}
	fmt.Fprint(s.writer, "\r\033[K"+line)
}
