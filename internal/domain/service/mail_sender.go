package service

import "context"

// MailSender defines the interface for transactional mail delivery.
// The core only sees the returned error; delivery state beyond that is
// the mail provider's concern.
type MailSender interface {
	// SendConfirmation sends the account confirmation mail carrying the
	// opaque action token.
	SendConfirmation(ctx context.Context, to, name, token string) error

	// SendPasswordReset sends the password recovery mail carrying the
	// opaque action token.
	SendPasswordReset(ctx context.Context, to, name, token string) error
}
