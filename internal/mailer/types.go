package mailer

import (
	"context"
)

// Message is one outgoing mail with a single recipient and a single
// file attachment.
type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment string
}

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
