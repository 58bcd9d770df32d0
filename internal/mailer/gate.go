package mailer

import (
	"bufio"
	"fmt"
	"io"
)

// Confirm prompts on out, blocks on one line from in and reports whether
// it is exactly the keyword. Anything else refuses.
func Confirm(in io.Reader, out io.Writer, keyword string) bool {
	fmt.Fprintf(out, "Please check files and type %q to send emails: ", keyword)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	return scanner.Text() == keyword
}
