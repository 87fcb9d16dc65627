package mailer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bulkmail/pkg/recipients"
	"github.com/dmitrymomot/bulkmail/pkg/render"
)

// Config holds the send-loop settings, fixed before the loop starts.
type Config struct {
	Delay          time.Duration // pause after each delivered message
	DryRun         bool          // render everything, deliver nothing
	TestRecipients []string      // override recipients for the first TestCount messages
	TestCount      int           // how many messages the test override applies to
	CSS            string        // optional stylesheet inlined into the HTML part
}

// Mailer drives the sequential send loop.
type Mailer struct {
	sender Sender
	log    *slog.Logger
	cfg    Config
}

// New creates a Mailer with the given transport and settings.
func New(sender Sender, cfg Config, log *slog.Logger) *Mailer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Mailer{sender: sender, cfg: cfg, log: log}
}

// Run loads all recipient contexts and sends one message per context,
// strictly in order. The first error aborts the whole run.
func (m *Mailer) Run(ctx context.Context, sources []recipients.Source, defaults recipients.Defaults, tpls Templates) error {
	contexts, err := recipients.Load(sources, defaults)
	if err != nil {
		return err
	}

	log := m.log.With(slog.String("run_id", uuid.New().String()))
	log.Info("starting send loop",
		slog.Int("recipients", len(contexts)),
		slog.Bool("dry_run", m.cfg.DryRun))

	for i, rc := range contexts {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := Generate(tpls, rc)
		if err != nil {
			return err
		}

		if m.cfg.CSS != "" && msg.HTML != "" {
			if msg.HTML, err = render.InlineCSS(msg.HTML, m.cfg.CSS); err != nil {
				return err
			}
		}

		if len(m.cfg.TestRecipients) > 0 {
			if i >= m.cfg.TestCount {
				return nil
			}
			msg.To = slices.Clone(m.cfg.TestRecipients)
		}

		log.Info("sending message",
			slog.String("from", msg.From),
			slog.String("to", strings.Join(msg.To, ", ")),
			slog.String("subject", msg.Subject))
		log.Debug("message content",
			slog.String("text", msg.Text),
			slog.String("html", msg.HTML))

		if !m.cfg.DryRun {
			if err := m.sender.Send(ctx, msg); err != nil {
				return errors.Join(ErrSendFailed, err)
			}
		}

		if m.cfg.Delay > 0 && i < len(contexts)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(m.cfg.Delay):
			}
		}
	}
	return nil
}
