package pgp

// Config holds OpenPGP key material locations and toggles.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Sign             bool
	Encrypt          bool
	KeyPath          string `env:"GPG_KEY"`           // armored private key file
	Passphrase       string `env:"GPG_PASSPHRASE"`    // private key passphrase
	RecipientKeyPath string `env:"GPG_RECIPIENT_KEY"` // armored public key file for encryption
}
