// Package pgp decorates a mailer.Sender with OpenPGP signing and encryption
// using gopenpgp. Signing produces a cleartext-signed text body; encryption
// replaces the message bodies with a single armored ciphertext part.
package pgp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ProtonMail/gopenpgp/v2/helper"

	"github.com/dmitrymomot/bulkmail/pkg/mailer"
)

var (
	// ErrNoPrivateKey indicates signing was requested without a private key.
	ErrNoPrivateKey = errors.New("pgp signing requires a private key")

	// ErrNoRecipientKey indicates encryption was requested without a recipient public key.
	ErrNoRecipientKey = errors.New("pgp encryption requires a recipient public key")
)

// Sender wraps a transport and transforms message bodies before delivery.
type Sender struct {
	next       mailer.Sender
	privateKey string
	publicKey  string
	config     Config
}

// New creates a decorating sender. Key files are read once at construction.
func New(next mailer.Sender, cfg Config) (*Sender, error) {
	s := &Sender{next: next, config: cfg}

	if cfg.Sign {
		if cfg.KeyPath == "" {
			return nil, ErrNoPrivateKey
		}
		key, err := os.ReadFile(cfg.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("read private key: %w", err)
		}
		s.privateKey = string(key)
	}
	if cfg.Encrypt {
		if cfg.RecipientKeyPath == "" {
			return nil, ErrNoRecipientKey
		}
		key, err := os.ReadFile(cfg.RecipientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("read recipient key: %w", err)
		}
		s.publicKey = string(key)
	}
	return s, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) error {
	out := *msg

	switch {
	case s.config.Encrypt:
		// Encryption collapses the message to a single armored text part;
		// mail clients cannot render encrypted HTML anyway.
		payload := msg.Text
		if payload == "" {
			payload = msg.HTML
		}
		var (
			armored string
			err     error
		)
		if s.config.Sign {
			armored, err = helper.EncryptSignMessageArmored(
				s.publicKey, s.privateKey, []byte(s.config.Passphrase), payload)
		} else {
			armored, err = helper.EncryptMessageArmored(s.publicKey, payload)
		}
		if err != nil {
			return fmt.Errorf("pgp encrypt: %w", err)
		}
		out.Text = armored
		out.HTML = ""

	case s.config.Sign:
		signed, err := helper.SignCleartextMessageArmored(
			s.privateKey, []byte(s.config.Passphrase), msg.Text)
		if err != nil {
			return fmt.Errorf("pgp sign: %w", err)
		}
		out.Text = signed
	}

	return s.next.Send(ctx, &out)
}
