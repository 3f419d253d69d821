package mailer

import (
	"context"
)

// Attachment is an inline file carried by a Message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is a transport-agnostic email.
type Message struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Transport delivers a message through one channel (SMTP or the Resend API).
type Transport interface {
	Send(ctx context.Context, msg *Message) error
	Name() string
}
