// Package sms describes the read-only view of an SMS provider's message log.
package sms

import (
	"context"
	"time"
)

// Message is a single message as reported by the provider.
type Message struct {
	SID      string
	From     string
	To       string
	Body     string
	DateSent *time.Time
	Status   string
}

// ListFilter narrows a message listing. Empty To or From are not sent.
type ListFilter struct {
	To    string
	From  string
	Limit int
}

// Provider reads messages from the remote log. Implementations return
// messages in the provider's own order (most recent first for Twilio).
type Provider interface {
	ListMessages(ctx context.Context, filter ListFilter) ([]Message, error)
	FetchMessage(ctx context.Context, sid string) (Message, error)
}

// ISOTimestamp renders t the way JavaScript's Date.toISOString does, which is
// what existing clients of this server parse. Nil stays nil.
func ISOTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return &s
}
