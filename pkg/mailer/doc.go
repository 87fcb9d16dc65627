// Package mailer assembles and dispatches personalized bulk email.
//
// The package separates message assembly from delivery: Generate merges one
// recipient context with up to three template documents (plaintext, Markdown,
// HTML) into a Message, and a Sender delivers it. Senders are pluggable;
// see the smtp, resend and pgp subpackages.
//
// # Assembly
//
// Generate applies the following fallback rules per recipient:
//
//   - A Markdown document is rendered and converted to HTML; the result is
//     exposed to the HTML document as the `content` variable. Without an
//     explicit HTML document a minimal wrapper is used.
//   - The HTML document (explicit or wrapper) is rendered into the HTML part.
//   - A plaintext document is rendered into the text part; without one the
//     text part is derived from the HTML part.
//
// Front matter metadata of each document extends the recipient context, so a
// template can set or override subject, sender and arbitrary variables.
//
// # Sending
//
// Mailer runs the sequential send loop over all loaded contexts. It supports
// dry runs (render everything, send nothing), a test-recipient override for
// the first N messages, optional CSS inlining and a fixed delay between
// sends. Any error aborts the whole run; there is no per-recipient retry.
package mailer
