package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	sent    []Message
	failFor string
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	if f.failFor != "" && msg.To == f.failFor {
		return errors.New("relay refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestSendBatch(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, log.NewNopLogger())

	err := svc.SendBatch(
		context.Background(),
		[]string{"output/relatorio-AcmeCo.xlsx", "output/relatorio-Globex.xlsx"},
		[]string{"acme@example.com", "globex@example.com"},
		"Weekly report",
		"See attached.",
	)
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 2)

	assert.Equal(t, "acme@example.com", sender.sent[0].To)
	assert.Equal(t, "Weekly report", sender.sent[0].Subject)
	assert.Equal(t, "See attached.", sender.sent[0].Body)
	// attachments go out by absolute path
	assert.True(t, strings.HasSuffix(sender.sent[0].Attachment, "relatorio-AcmeCo.xlsx"))
	assert.NotEqual(t, "output/relatorio-AcmeCo.xlsx", sender.sent[0].Attachment)
}

func TestSendBatchLengthMismatch(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, log.NewNopLogger())

	err := svc.SendBatch(
		context.Background(),
		[]string{"output/relatorio-AcmeCo.xlsx", "output/relatorio-Globex.xlsx"},
		[]string{"acme@example.com"},
		"Weekly report",
		"See attached.",
	)
	assert.ErrorIs(t, err, errListLengthMismatch)
	assert.Empty(t, sender.sent)
}

func TestSendBatchContinuesOnFailure(t *testing.T) {
	sender := &fakeSender{failFor: "acme@example.com"}
	svc := NewService(sender, log.NewNopLogger())

	err := svc.SendBatch(
		context.Background(),
		[]string{"a.xlsx", "b.xlsx"},
		[]string{"acme@example.com", "globex@example.com"},
		"Weekly report",
		"See attached.",
	)
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "globex@example.com", sender.sent[0].To)
}

func TestConfirm(t *testing.T) {
	for input, expected := range map[string]bool{
		"send":  true,
		"Send":  false,
		"":      false,
		"yes":   false,
		" send": false,
	} {
		t.Run("input "+input, func(t *testing.T) {
			var out strings.Builder
			ok := Confirm(strings.NewReader(input+"\n"), &out, "send")
			assert.Equal(t, expected, ok)
			assert.Contains(t, out.String(), "send")
		})
	}
}

func TestConfirmClosedInput(t *testing.T) {
	var out strings.Builder
	assert.False(t, Confirm(strings.NewReader(""), &out, "send"))
}
