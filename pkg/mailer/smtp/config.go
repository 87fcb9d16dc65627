package smtp

// Security selects the transport-layer encryption for the SMTP session.
type Security string

const (
	// SecurityNone uses a plain connection without encryption.
	SecurityNone Security = "none"
	// SecurityTLS uses implicit TLS from the first byte (usually port 465).
	SecurityTLS Security = "tls"
	// SecuritySTARTTLS connects in plain and upgrades via STARTTLS.
	SecuritySTARTTLS Security = "starttls"
)

// Config holds SMTP connection settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string   `env:"SMTP_HOST"`
	Port     int      `env:"SMTP_PORT" envDefault:"465"`
	Username string   `env:"SMTP_USERNAME"`
	Password string   `env:"SMTP_PASSWORD"`
	Security Security `env:"SMTP_SECURITY" envDefault:"tls"`
}
