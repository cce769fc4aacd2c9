package provisioning

import (
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Logger is the minimal printf-style logging surface used by the pipeline.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during a run.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType // Type of event
	Step      string    // Step name (e.g., "host-network", "kubelet-service")
	Message   string    // Human-readable message
	Resource  string    // Resource name/ID if applicable
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStepStarted indicates a provisioning step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a provisioning step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a provisioning step failed.
	EventStepFailed EventType = "step.failed"

	// EventResourceCreating indicates a resource is being installed.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was installed successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates a resource already exists and was skipped.
	EventResourceExists EventType = "resource.exists"
	// EventResourceFailed indicates resource installation failed.
	EventResourceFailed EventType = "resource.failed"
)

// ConsoleObserver implements Observer on a logr.Logger.
type ConsoleObserver struct {
	log logr.Logger
}

// NewConsoleObserver creates an observer writing human-readable lines to stderr.
func NewConsoleObserver() *ConsoleObserver {
	return NewObserver(funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{}))
}

// NewObserver creates an observer emitting through the given logger.
// Tests inject a capturing logger here.
func NewObserver(log logr.Logger) *ConsoleObserver {
	return &ConsoleObserver{log: log}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	o.log.Info(fmt.Sprintf(format, v...))
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	kvs := []interface{}{"event", string(event.Type)}
	if event.Step != "" {
		kvs = append(kvs, "step", event.Step)
	}
	if event.Resource != "" {
		kvs = append(kvs, "resource", event.Resource)
	}
	o.log.Info(event.Message, kvs...)
}

// Helper functions for common events

// LogStepStart logs a step start event.
func LogStepStart(observer Observer, step string) {
	observer.Event(Event{
		Type:    EventStepStarted,
		Step:    step,
		Message: "starting",
	})
}

// LogStepComplete logs a step completion event.
func LogStepComplete(observer Observer, step string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStepCompleted,
		Step:    step,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogStepFailed logs a step failure event.
func LogStepFailed(observer Observer, step string, err error) {
	observer.Event(Event{
		Type:    EventStepFailed,
		Step:    step,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogResourceCreating logs a resource installation start event.
func LogResourceCreating(observer Observer, kind, name string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Resource: name,
		Message:  fmt.Sprintf("installing %s", kind),
	})
}

// LogResourceCreated logs a successful resource installation event.
func LogResourceCreated(observer Observer, kind, name string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Resource: name,
		Message:  fmt.Sprintf("%s installed", kind),
	})
}

// LogResourceExists logs when a resource already exists.
func LogResourceExists(observer Observer, kind, name string) {
	observer.Event(Event{
		Type:     EventResourceExists,
		Resource: name,
		Message:  fmt.Sprintf("%s already present, skipping", kind),
	})
}

// LogResourceFailed logs a failed resource installation.
func LogResourceFailed(observer Observer, kind, name string, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Resource: name,
		Message:  fmt.Sprintf("%s installation failed: %v", kind, err),
	})
}
