// Command bulkmail sends personalized bulk email: recipient data from CSV
// files is merged into plaintext/Markdown/HTML templates and the resulting
// messages are dispatched over SMTP or the Resend API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dmitrymomot/bulkmail/pkg/config"
	"github.com/dmitrymomot/bulkmail/pkg/logger"
	"github.com/dmitrymomot/bulkmail/pkg/mailer"
	"github.com/dmitrymomot/bulkmail/pkg/mailer/pgp"
	"github.com/dmitrymomot/bulkmail/pkg/mailer/resend"
	"github.com/dmitrymomot/bulkmail/pkg/mailer/smtp"
	"github.com/dmitrymomot/bulkmail/pkg/recipients"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("bulkmail", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bulkmail [flags] recipients.csv [more.csv ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var (
		verbose     = fs.CountP("verbose", "v", "enable more verbose output")
		showVersion = fs.Bool("version", false, "print the program version and quit")

		smtpHost     = fs.StringP("smtp-host", "h", "", "host for the SMTP connection")
		smtpPort     = fs.IntP("smtp-port", "o", 465, "port for the SMTP connection")
		smtpUsername = fs.StringP("smtp-username", "u", "", "username for the SMTP login")
		smtpPassword = fs.StringP("smtp-password", "p", "", "password for the SMTP login")
		smtpNoSSL    = fs.Bool("smtp-nossl", false, "disable TLS for the SMTP connection")
		smtpStartTLS = fs.Bool("smtp-starttls", false, "use STARTTLS for the SMTP connection")

		sender  = fs.StringP("sender", "e", "", "sender of the bulk mail")
		subject = fs.StringP("subject", "s", "", "subject of the bulk mail")

		htmlTemplate      = fs.StringP("html-template", "l", "", "HTML template file")
		markdownTemplate  = fs.StringP("markdown-template", "m", "", "Markdown template file, its content is inserted into the HTML template")
		plaintextTemplate = fs.String("plaintext-template", "", "plaintext template file")

		csvDelimiter = fs.String("csv-delimiter", ",", "delimiter of the CSV files")
		csvSkipRows  = fs.Int("csv-skip-rows", 0, "rows to skip at the top of each CSV file")
		sendDelay    = fs.Int("send-delay", 0, "seconds to wait between mails")
		cssFile      = fs.String("css", "", "stylesheet file to inline into the HTML part")
		provider     = fs.String("provider", "smtp", "mail transport: smtp or resend")

		gpgSign     = fs.Bool("gpg-sign", false, "sign mails with GPG")
		gpgEncrypt  = fs.Bool("gpg-encrypt", false, "encrypt mails with GPG")
		gpgKey      = fs.String("gpg-key", "", "armored private key file for signing")
		gpgPassword = fs.String("gpg-password", "", "passphrase for the signing key")

		testEmail = fs.String("test-email", "", "divert mails to this address for testing")
		testCount = fs.Int("test-count", 1, "how many mails to divert to the test address")
		dryRun    = fs.BoolP("dry-run", "n", false, "render everything but do not send")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *showVersion {
		fmt.Println("bulkmail " + version)
		return 0
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one recipients CSV file is required")
		fs.Usage()
		return 1
	}
	if *plaintextTemplate == "" && *markdownTemplate == "" && *htmlTemplate == "" {
		fmt.Fprintln(os.Stderr, "at least one template is required")
		return 1
	}

	delimiter, size := utf8.DecodeRuneInString(*csvDelimiter)
	if size == 0 || size != len(*csvDelimiter) {
		fmt.Fprintln(os.Stderr, "csv delimiter must be a single character")
		return 1
	}

	log := logger.New(*verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := func() error {
		// SMTP settings: environment first, explicit flags win.
		var smtpCfg smtp.Config
		if err := config.Load(&smtpCfg); err != nil {
			return err
		}
		if fs.Changed("smtp-host") {
			smtpCfg.Host = *smtpHost
		}
		if fs.Changed("smtp-port") {
			smtpCfg.Port = *smtpPort
		}
		if fs.Changed("smtp-username") {
			smtpCfg.Username = *smtpUsername
		}
		if fs.Changed("smtp-password") {
			smtpCfg.Password = *smtpPassword
		}
		switch {
		case *smtpNoSSL:
			smtpCfg.Security = smtp.SecurityNone
		case *smtpStartTLS:
			smtpCfg.Security = smtp.SecuritySTARTTLS
		}

		transport, err := buildTransport(*provider, smtpCfg, *dryRun)
		if err != nil {
			return err
		}

		if *gpgSign || *gpgEncrypt {
			var gpgCfg pgp.Config
			if err := config.Load(&gpgCfg); err != nil {
				return err
			}
			gpgCfg.Sign = *gpgSign
			gpgCfg.Encrypt = *gpgEncrypt
			if fs.Changed("gpg-key") {
				gpgCfg.KeyPath = *gpgKey
			}
			if fs.Changed("gpg-password") {
				gpgCfg.Passphrase = *gpgPassword
			}
			if transport, err = pgp.New(transport, gpgCfg); err != nil {
				return err
			}
		}

		defaults := recipients.Defaults{Subject: *subject}
		if *sender != "" {
			if defaults.Sender, err = mailer.ParseAddress(*sender); err != nil {
				return err
			}
		}

		var testRecipients []string
		if *testEmail != "" {
			if testRecipients, err = mailer.ParseAddressList(*testEmail); err != nil {
				return err
			}
		}

		var css string
		if *cssFile != "" {
			content, err := os.ReadFile(*cssFile)
			if err != nil {
				return fmt.Errorf("read css file: %w", err)
			}
			css = string(content)
		}

		templates, err := mailer.TemplatesFromFiles(*plaintextTemplate, *markdownTemplate, *htmlTemplate)
		if err != nil {
			return err
		}

		sources := make([]recipients.Source, 0, fs.NArg())
		for _, path := range fs.Args() {
			sources = append(sources, recipients.Source{
				Path:      path,
				Delimiter: delimiter,
				SkipRows:  *csvSkipRows,
			})
		}

		m := mailer.New(transport, mailer.Config{
			Delay:          time.Duration(*sendDelay) * time.Second,
			DryRun:         *dryRun,
			TestRecipients: testRecipients,
			TestCount:      *testCount,
			CSS:            css,
		}, log)

		return m.Run(ctx, sources, defaults, templates)
	}()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted by user, exiting")
			return 1
		}
		if *verbose >= 2 {
			log.Error("run failed", slog.Any("error", err))
		} else {
			log.Error(firstLine(err.Error()))
		}
		return 1
	}
	return 0
}

// buildTransport selects the mail transport. Missing SMTP settings are
// collected interactively unless this is a dry run.
func buildTransport(provider string, smtpCfg smtp.Config, dryRun bool) (mailer.Sender, error) {
	switch provider {
	case "resend":
		var cfg resend.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		if cfg.APIKey == "" {
			return nil, errors.New("RESEND_API_KEY is required for the resend provider")
		}
		return resend.New(cfg), nil
	case "smtp":
		if !dryRun {
			if err := promptMissing(&smtpCfg); err != nil {
				return nil, err
			}
		}
		return smtp.New(smtpCfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

// promptMissing asks for SMTP host, username and password when they were
// supplied neither via flags nor environment. Password input is hidden.
func promptMissing(cfg *smtp.Config) error {
	in := bufio.NewReader(os.Stdin)
	prompt := func(label string) (string, error) {
		fmt.Fprint(os.Stderr, label)
		line, err := in.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	var err error
	if cfg.Host == "" {
		if cfg.Host, err = prompt("SMTP Host: "); err != nil {
			return err
		}
	}
	if cfg.Username == "" {
		if cfg.Username, err = prompt("SMTP Username: "); err != nil {
			return err
		}
	}
	if cfg.Password == "" {
		fmt.Fprint(os.Stderr, "SMTP Password (input is hidden): ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		cfg.Password = string(secret)
	}
	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
