// Package service defines interfaces for external collaborators the domain
// depends on.
package service

import "context"

// MessageService is the outbound notification channel contract. Send
// delivers a message body to one destination (a WhatsApp number in the
// production implementation) and returns an error when delivery fails.
//
// An unconfigured channel must stay callable: Send reports a deterministic
// failure for every destination instead of panicking, and IsConfigured
// returns false.
type MessageService interface {
	Send(ctx context.Context, to, body string) error
	IsConfigured() bool
}
