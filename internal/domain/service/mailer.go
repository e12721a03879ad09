package service

import "context"

// InvitationMail is the content handed to the delivery channel when a
// sharing invitation is created.
type InvitationMail struct {
	To          string
	InviterName string
	Message     string
	AcceptToken string
}

// Mailer delivers invitation mail. Actual delivery is an external
// collaborator; the default adapter only logs the send.
type Mailer interface {
	SendInvitation(ctx context.Context, mail *InvitationMail) error
}
