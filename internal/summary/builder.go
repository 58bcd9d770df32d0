package summary

import (
	"encoding/json"
)

// Report is the run outcome printed to the console.
type Report struct {
	Merchants int      `json:"merchants"`
	Files     []string `json:"files"`
	MailSent  bool     `json:"mail_sent"`
}

type summary struct {
	IsOk    bool        `json:"is_ok"`
	Payload interface{} `json:"payload,omitempty"`
}

// Build marshals the run outcome. On error the payload is replaced by
// the error text.
func Build(payload interface{}, err error) ([]byte, error) {
	s := summary{
		IsOk: err == nil,
	}

	if payload != nil {
		s.Payload = payload
	}

	if !s.IsOk {
		s.Payload = err.Error()
	}
	return json.Marshal(s)
}
