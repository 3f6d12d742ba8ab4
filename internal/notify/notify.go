// Package notify pushes back-office events to chat platforms (Slack, Discord).
package notify

import (
	"context"
	"log"
)

// Event is a back-office occurrence worth telling the team about.
type Event struct {
	Title    string  // event headline (e.g. "Nouveau message de contact")
	Body     string  // detail text
	Severity string  // "info", "warning", "error"
	Fields   []Field // key-value metadata pairs
}

// Field is a key-value pair displayed alongside an event.
type Field struct {
	Name  string
	Value string
}

// Notifier is the interface platform-specific implementations satisfy.
type Notifier interface {
	// Send delivers the event to the platform.
	Send(ctx context.Context, ev Event) error

	// Close shuts down the notifier connection.
	Close() error
}

// Broadcast sends the event to every notifier, best-effort. Failures are
// logged and never propagate: a down chat platform must not fail the
// request that produced the event.
func Broadcast(ctx context.Context, notifiers []Notifier, ev Event) {
	for _, n := range notifiers {
		if err := n.Send(ctx, ev); err != nil {
			log.Printf("notify: send %q: %v", ev.Title, err)
		}
	}
}

// ContactMessageEvent builds the event for a new contact form submission.
func ContactMessageEvent(name, email, subject string) Event {
	fields := []Field{
		{Name: "De", Value: name},
		{Name: "Email", Value: email},
	}
	if subject != "" {
		fields = append(fields, Field{Name: "Sujet", Value: subject})
	}
	return Event{
		Title:    "Nouveau message de contact",
		Body:     "Un message vient d'arriver dans la boîte de réception.",
		Severity: "info",
		Fields:   fields,
	}
}

// OrphanedObjectEvent builds the event for a storage object stranded by a
// failed metadata insert whose compensating delete also failed.
func OrphanedObjectEvent(path string, cause error) Event {
	return Event{
		Title:    "Objet orphelin dans le stockage",
		Body:     cause.Error(),
		Severity: "error",
		Fields: []Field{
			{Name: "Chemin", Value: path},
		},
	}
}

// SeverityColor maps a severity to the sidebar color chat platforms show.
func SeverityColor(severity string) string {
	switch severity {
	case "error":
		return "#d50200"
	case "warning":
		return "#e8a317"
	default:
		return "#36a64f"
	}
}
