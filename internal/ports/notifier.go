package ports

import "time"

// Notifier delivers user-visible messages.
type Notifier interface {
	// Notify shows a transient message. Timeout is a display hint only.
	Notify(message string, timeout time.Duration)

	// Close ends the run with a terminal message. An empty message ends the
	// run silently.
	Close(message string)
}
