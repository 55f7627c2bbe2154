// Package notify delivers user-visible messages to a writer.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bft-labs/sftype/internal/ports"
)

// Writer implements ports.Notifier by printing each message on its own line
// and mirroring it to the structured log.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	logger ports.Logger
	closed bool
}

// New creates a notifier writing to out.
func New(out io.Writer, logger ports.Logger) *Writer {
	return &Writer{out: out, logger: logger}
}

// Notify prints a transient message. The timeout is logged but not waited on.
func (w *Writer) Notify(message string, timeout time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.logger.Info("notify", ports.String("message", message), ports.Duration("timeout", timeout))
	w.println(message)
}

// Close prints the terminal message, if any. Only the first call has an effect.
func (w *Writer) Close(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true

	w.logger.Info("close", ports.String("message", message))
	if message != "" {
		w.println(message)
	}
}

func (w *Writer) println(message string) {
	if _, err := fmt.Fprintln(w.out, message); err != nil {
		w.logger.Warn("failed to write notification", ports.Err(err))
	}
}

var _ ports.Notifier = (*Writer)(nil)
