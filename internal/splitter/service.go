package splitter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/schollz/progressbar/v3"

	"github.com/geoirb/seller-sync/internal/contacts"
	"github.com/geoirb/seller-sync/internal/workbook"
)

type filler interface {
	Clear() error
	Fill(sheet string, header []string, rows [][]string) error
	SaveAndReload(path string) error
}

type namer interface {
	Output(name string) string
}

// Service splits the consolidated workbook into one report file per
// merchant.
type Service struct {
	tables map[string]workbook.Table
	sheets []string

	idColumn   string
	nameSheet  string
	nameColumn string

	filler filler
	namer  namer

	logger log.Logger
}

// NewService ...
func NewService(
	tables map[string]workbook.Table,
	sheets []string,
	idColumn string,
	nameSheet string,
	nameColumn string,

	filler filler,
	namer namer,

	logger log.Logger,
) *Service {
	return &Service{
		tables:     tables,
		sheets:     sheets,
		idColumn:   idColumn,
		nameSheet:  nameSheet,
		nameColumn: nameColumn,
		filler:     filler,
		namer:      namer,
		logger:     logger,
	}
}

// Split generates one report per contact, in contacts order, and returns
// the generated paths in the same order.
func (s *Service) Split(ctx context.Context, contactList []contacts.Contact) (files []string, err error) {
	logger := log.WithPrefix(s.logger, "method", "Split")
	level.Info(logger).Log("msg", "started splitting merchants", "merchants", len(contactList))

	bar := progressbar.Default(int64(len(contactList)), "splitting files")
	for _, contact := range contactList {
		level.Info(logger).Log("msg", "splitting merchant", "merchant_id", contact.MerchantID)

		var path string
		if path, err = s.export(contact.MerchantID); err != nil {
			level.Error(logger).Log("msg", "export merchant", "merchant_id", contact.MerchantID, "err", err)
			return
		}
		files = append(files, path)
		level.Info(logger).Log("msg", "file saved", "merchant_id", contact.MerchantID, "path", path)
		bar.Add(1)
	}

	level.Info(logger).Log("msg", "splitting finished", "files", len(files))
	return
}

// export clears the template, fills it with the merchant's rows and
// saves it under the derived path.
func (s *Service) export(merchantID int64) (string, error) {
	if err := s.filler.Clear(); err != nil {
		return "", fmt.Errorf("clear template: %s", err)
	}

	parts := make(map[string]workbook.Table, len(s.sheets))
	for _, sheet := range s.sheets {
		table, ok := s.tables[sheet]
		if !ok {
			return "", fmt.Errorf("sheet %s: %s", sheet, errSheetNotFound)
		}
		part, err := s.filter(table, merchantID)
		if err != nil {
			return "", fmt.Errorf("sheet %s: %s", sheet, err)
		}
		parts[sheet] = part
	}

	name, err := s.sellerName(parts[s.nameSheet], merchantID)
	if err != nil {
		return "", err
	}

	for _, sheet := range s.sheets {
		part := parts[sheet]
		if err := s.filler.Fill(sheet, part.Header, part.Rows); err != nil {
			return "", fmt.Errorf("fill sheet %s: %s", sheet, err)
		}
	}

	path := s.namer.Output(name)
	if err := s.filler.SaveAndReload(path); err != nil {
		return "", err
	}
	return path, nil
}

// filter keeps the rows whose id column coerces to merchantID. Rows with
// an id that does not coerce simply do not match.
func (s *Service) filter(table workbook.Table, merchantID int64) (workbook.Table, error) {
	idIdx, err := table.ColumnIndex(s.idColumn)
	if err != nil {
		return workbook.Table{}, err
	}

	part := workbook.Table{Header: table.Header}
	for _, row := range table.Rows {
		id, err := workbook.CoerceID(workbook.Cell(row, idIdx))
		if err != nil {
			continue
		}
		if id == merchantID {
			part.Rows = append(part.Rows, row)
		}
	}
	return part, nil
}

// sellerName reads the seller name from the first matching row of the
// filename sheet. A merchant without rows there still gets a file, named
// by its id.
func (s *Service) sellerName(table workbook.Table, merchantID int64) (string, error) {
	nameIdx, err := table.ColumnIndex(s.nameColumn)
	if err != nil {
		return "", fmt.Errorf("sheet %s: %s", s.nameSheet, err)
	}
	if len(table.Rows) == 0 {
		return strconv.FormatInt(merchantID, 10), nil
	}
	return workbook.Cell(table.Rows[0], nameIdx), nil
}
