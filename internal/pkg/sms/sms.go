// Package sms sends short text messages to phone numbers.
package sms

import "context"

// Message is a text message addressed to a single phone number.
type Message struct {
	To   string
	Body string
}

// Sender delivers text messages through a provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
