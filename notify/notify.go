// Package notify is the toast/alert boundary. The workflow code only ever
// calls Success or Error and never looks at a result; how a message reaches
// the user (log line, HTMX toast header) is the implementation's business.
package notify

import (
	"log"
	"sync"
)

type Notifier interface {
	Success(message string)
	Error(message string)
}

// Logger writes notifications to the standard logger. Used as the fallback
// sink on the server side.
type Logger struct{}

func (Logger) Success(message string) {
	log.Printf("[notice] %s", message)
}

func (Logger) Error(message string) {
	log.Printf("[error] %s", message)
}

// Recorder accumulates notifications so a handler can flush them into the
// response (and tests can assert on them). Safe for concurrent use; a save
// completion may land on another goroutine than the one draining.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

// Drain returns everything recorded so far and resets the recorder.
func (r *Recorder) Drain() (successes, errors []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	successes, r.successes = r.successes, nil
	errors, r.errors = r.errors, nil
	return successes, errors
}
