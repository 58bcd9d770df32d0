package mailer

import (
	"context"
	"path/filepath"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/schollz/progressbar/v3"
)

// Service mails one generated report to each merchant contact.
type Service struct {
	sender Sender

	logger log.Logger
}

// NewService ...
func NewService(
	sender Sender,

	logger log.Logger,
) *Service {
	return &Service{
		sender: sender,
		logger: logger,
	}
}

// SendBatch mails files[i] to recipients[i]. Subject and body are shared
// by every message. The lists must have equal length, checked before any
// send. A failed send is logged and the loop continues.
func (s *Service) SendBatch(ctx context.Context, files, recipients []string, subject, body string) error {
	if len(files) != len(recipients) {
		return errListLengthMismatch
	}

	logger := log.WithPrefix(s.logger, "method", "SendBatch")
	bar := progressbar.Default(int64(len(files)), "sending emails")
	for idx, file := range files {
		attachment, err := filepath.Abs(file)
		if err != nil {
			attachment = file
		}

		msg := Message{
			To:         recipients[idx],
			Subject:    subject,
			Body:       body,
			Attachment: attachment,
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			level.Error(logger).Log("msg", "send email", "to", msg.To, "file", file, "err", err)
		} else {
			level.Info(logger).Log("msg", "email sent", "to", msg.To, "file", file)
		}
		bar.Add(1)
	}
	return nil
}
