package contacts

import (
	"fmt"

	"github.com/geoirb/seller-sync/internal/workbook"
)

// Contact is the mail metadata of one merchant.
type Contact struct {
	MerchantID int64
	Email      string
	Subject    string
	Body       string
}

// Extractor derives the contact list from the contacts sheet.
type Extractor struct {
	idColumn      string
	emailColumn   string
	subjectColumn string
	bodyColumn    string
}

// NewExtractor ...
func NewExtractor(
	idColumn string,
	emailColumn string,
	subjectColumn string,
	bodyColumn string,
) *Extractor {
	return &Extractor{
		idColumn:      idColumn,
		emailColumn:   emailColumn,
		subjectColumn: subjectColumn,
		bodyColumn:    bodyColumn,
	}
}

// Extract promotes the first data row of the contacts sheet to column
// headers and returns one contact per remaining row, in row order.
// Repeated merchant ids are kept.
func (e *Extractor) Extract(table workbook.Table) ([]Contact, error) {
	if len(table.Rows) == 0 {
		return nil, errEmptySheet
	}

	// The contacts sheet carries its real header in the first data row,
	// the grid header above it is a title.
	promoted := workbook.Table{
		Header: table.Rows[0],
		Rows:   table.Rows[1:],
	}

	idIdx, err := promoted.ColumnIndex(e.idColumn)
	if err != nil {
		return nil, err
	}
	emailIdx, err := promoted.ColumnIndex(e.emailColumn)
	if err != nil {
		return nil, err
	}
	subjectIdx, err := promoted.ColumnIndex(e.subjectColumn)
	if err != nil {
		return nil, err
	}
	bodyIdx, err := promoted.ColumnIndex(e.bodyColumn)
	if err != nil {
		return nil, err
	}

	contactList := make([]Contact, 0, len(promoted.Rows))
	for _, row := range promoted.Rows {
		id, err := workbook.CoerceID(workbook.Cell(row, idIdx))
		if err != nil {
			return nil, fmt.Errorf("contact merchant id: %s", err)
		}
		contactList = append(contactList, Contact{
			MerchantID: id,
			Email:      workbook.Cell(row, emailIdx),
			Subject:    workbook.Cell(row, subjectIdx),
			Body:       workbook.Cell(row, bodyIdx),
		})
	}
	return contactList, nil
}
