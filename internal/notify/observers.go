package notify

import (
	"log"
	"sync"

	"feedcompose/internal/common"
)

// LogObserver writes every notification to the process log.
type LogObserver struct{}

func NewLogObserver() *LogObserver {
	return &LogObserver{}
}

func (l *LogObserver) Name() string {
	return "log_observer"
}

func (l *LogObserver) Update(severity common.Severity, message string) error {
	log.Printf("[%s] %s", severity, message)
	return nil
}

// Collector records notifications in memory; used by tests to assert on
// what the user would have seen.
type Collector struct {
	mu     sync.Mutex
	events []CollectedEvent
}

type CollectedEvent struct {
	Severity common.Severity
	Message  string
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Name() string {
	return "collector_observer"
}

func (c *Collector) Update(severity common.Severity, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, CollectedEvent{Severity: severity, Message: message})
	return nil
}

func (c *Collector) Events() []CollectedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CollectedEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Notify lets tests use a bare Collector as a common.Notifier without a Hub.
func (c *Collector) Notify(severity common.Severity, message string) {
	_ = c.Update(severity, message)
}
