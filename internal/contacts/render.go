package contacts

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Render writes the contact list to out as a console table.
func Render(out io.Writer, contactList []Contact) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"merchant_customer_id", "email", "email_subject", "email_body"})
	for _, contact := range contactList {
		table.Append([]string{
			strconv.FormatInt(contact.MerchantID, 10),
			contact.Email,
			contact.Subject,
			contact.Body,
		})
	}
	table.Render()
}
