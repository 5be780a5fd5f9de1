package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// searchSpinner animates a status line on w while a search runs. It stops
// on its own when ctx is cancelled.
type searchSpinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

// startSpinner starts a spinner showing message. Callers must end it with
// one of the Stop methods.
func startSpinner(ctx context.Context, w io.Writer, message string) *searchSpinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &searchSpinner{
		w:       w,
		message: message,
		ctx:     sctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *searchSpinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-s.done:
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			s.mu.Lock()
			fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			s.mu.Unlock()
		}
	}
}

// Stop ends the animation and clears the line. Extra calls are no-ops.
func (s *searchSpinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		close(s.done)
		<-s.stopped
		s.clearLine()
	})
}

// StopWithSuccess stops the spinner and leaves msg in its place.
func (s *searchSpinner) StopWithSuccess(msg string) {
	s.Stop()
	s.println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// StopWithError stops the spinner and reports why the search ended early.
// The error text itself is left to the caller.
func (s *searchSpinner) StopWithError(err error) {
	interrupted := s.Interrupted() || errors.Is(err, context.Canceled)
	s.Stop()
	if interrupted {
		s.println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render("interrupted: "+s.message))
		return
	}
	s.println(styleIconError.Render(iconError) + " failed: " + s.message)
}

// Interrupted reports whether the parent context ended before Stop.
func (s *searchSpinner) Interrupted() bool {
	select {
	case <-s.done:
		return false
	default:
	}
	return s.ctx.Err() != nil
}

func (s *searchSpinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

func (s *searchSpinner) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}
