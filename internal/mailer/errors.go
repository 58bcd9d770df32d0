package mailer

import (
	"errors"
)

var (
	errListLengthMismatch = errors.New("len of file list is not equal len of email list")
)
