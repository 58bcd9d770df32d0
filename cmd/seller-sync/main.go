package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"github.com/geoirb/seller-sync/internal/contacts"
	"github.com/geoirb/seller-sync/internal/mailer"
	"github.com/geoirb/seller-sync/internal/parser"
	"github.com/geoirb/seller-sync/internal/path"
	"github.com/geoirb/seller-sync/internal/splitter"
	"github.com/geoirb/seller-sync/internal/summary"
	"github.com/geoirb/seller-sync/internal/workbook"
	"github.com/geoirb/seller-sync/internal/xlsx"
)

type configuration struct {
	TemplateFile  string   `envconfig:"TEMPLATE_FILE" default:"template.xlsx"`
	DataFile      string   `envconfig:"DATA_FILE" default:"SellerSync_Data.xlsx"`
	InputSheets   []string `envconfig:"INPUT_SHEETS" default:"GMS_AGG,GMS_SKU"`
	ContactsSheet string   `envconfig:"CONTACTS_SHEET" default:"CONTATOS"`

	OutputFolder string `envconfig:"OUTPUT_FOLDER" default:"output"`
	OutputPrefix string `envconfig:"OUTPUT_PREFIX" default:"relatorio-"`

	IDColumn       string `envconfig:"ID_COLUMN" default:"merchant_customer_id"`
	EmailColumn    string `envconfig:"EMAIL_COLUMN" default:"email"`
	SubjectColumn  string `envconfig:"SUBJECT_COLUMN" default:"email_subject"`
	BodyColumn     string `envconfig:"BODY_COLUMN" default:"email_body"`
	FilenameSheet  string `envconfig:"FILENAME_SHEET" default:"GMS_AGG"`
	FilenameColumn string `envconfig:"FILENAME_COLUMN" default:"seller_name"`

	ClearRows int `envconfig:"CLEAR_ROWS" default:"50"`
	ClearCols int `envconfig:"CLEAR_COLS" default:"50"`

	ConfirmationKeyword string `envconfig:"CONFIRMATION_KEYWORD" default:"send"`
	LogFile             string `envconfig:"LOG_FILE" default:"app.log"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM" default:"seller-sync@localhost"`
}

const (
	prefixCfg   = ""
	serviceName = "seller-sync"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))

	var cfg configuration
	if err := envconfig.Process(prefixCfg, &cfg); err != nil {
		level.Error(logger).Log("msg", "configuration", "err", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		level.Error(logger).Log("msg", "open log file", "file", cfg.LogFile, "err", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger = log.NewLogfmtLogger(log.NewSyncWriter(logFile))
	logger = log.WithPrefix(logger, "service", serviceName, "run", uuid.New().String())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	level.Info(logger).Log("msg", "initialization")

	fileParser, err := parser.New()
	if err != nil {
		level.Error(logger).Log("msg", "parser init", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "importing data", "file", cfg.DataFile)
	tables, err := workbook.NewLoader(fileParser).Load(cfg.DataFile)
	if err != nil {
		level.Error(logger).Log("msg", "import data", "err", err)
		os.Exit(1)
	}

	contactsTable, isExist := tables[cfg.ContactsSheet]
	if !isExist {
		level.Error(logger).Log("msg", "contacts sheet not found", "sheet", cfg.ContactsSheet)
		os.Exit(1)
	}

	extractor := contacts.NewExtractor(
		cfg.IDColumn,
		cfg.EmailColumn,
		cfg.SubjectColumn,
		cfg.BodyColumn,
	)
	contactList, err := extractor.Extract(contactsTable)
	if err != nil {
		level.Error(logger).Log("msg", "extract contacts", "err", err)
		os.Exit(1)
	}

	filler, err := xlsx.NewFiller(
		cfg.TemplateFile,
		cfg.InputSheets,
		cfg.ClearRows,
		cfg.ClearCols,
	)
	if err != nil {
		level.Error(logger).Log("msg", "filler init", "err", err)
		os.Exit(1)
	}

	namer, err := path.NewBuilder(
		cfg.OutputFolder,
		cfg.OutputPrefix,
	)
	if err != nil {
		level.Error(logger).Log("msg", "path init", "err", err)
		os.Exit(1)
	}

	svc := splitter.NewService(
		tables,
		cfg.InputSheets,
		cfg.IDColumn,
		cfg.FilenameSheet,
		cfg.FilenameColumn,
		filler,
		namer,
		logger,
	)

	ctx := context.Background()
	files, err := svc.Split(ctx, contactList)
	if err != nil {
		report(os.Stdout, summary.Report{Merchants: len(contactList)}, err)
		os.Exit(1)
	}

	contacts.Render(os.Stdout, contactList)

	mailSent := false
	if mailer.Confirm(os.Stdin, os.Stdout, cfg.ConfirmationKeyword) && len(contactList) > 0 {
		sender := mailer.NewSMTPSender(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.MailFrom,
		)

		recipients := make([]string, 0, len(contactList))
		for _, contact := range contactList {
			recipients = append(recipients, contact.Email)
		}

		// subject and body come from the first contact row only
		err = mailer.NewService(sender, logger).SendBatch(
			ctx,
			files,
			recipients,
			contactList[0].Subject,
			contactList[0].Body,
		)
		if err != nil {
			level.Error(logger).Log("msg", "send emails", "err", err)
			report(os.Stdout, summary.Report{Merchants: len(contactList), Files: files}, err)
			os.Exit(1)
		}
		mailSent = true
	}

	report(os.Stdout, summary.Report{
		Merchants: len(contactList),
		Files:     files,
		MailSent:  mailSent,
	}, nil)
	level.Info(logger).Log("msg", "stop service", "files", len(files), "mail_sent", mailSent)
}

func report(out io.Writer, payload summary.Report, err error) {
	if data, buildErr := summary.Build(payload, err); buildErr == nil {
		fmt.Fprintln(out, string(data))
	}
}
