// Package notification contains the concrete outbound messaging channel
// built on Twilio's WhatsApp API.
package notification

import (
	"context"
	"log/slog"

	"github.com/MelissaPascal/sulten-dms-ai/config"
	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrChannelNotConfigured is returned by Send when the Twilio credentials
// are absent. Callers treat delivery errors as non-fatal, so an
// unconfigured channel degrades to recorded failures rather than a crash.
var ErrChannelNotConfigured = errors.New("whatsapp channel not configured")

// twilioMessageService implements service.MessageService over the Twilio
// WhatsApp API.
type twilioMessageService struct {
	client     *twilio.RestClient
	fromNumber string
	logger     *slog.Logger
}

// NewTwilioMessageService builds the WhatsApp channel from config. A nil or
// incomplete Twilio section yields an unconfigured channel that stays
// callable but fails every send.
func NewTwilioMessageService(cfg *config.Config, logger *slog.Logger) service.MessageService {
	svc := &twilioMessageService{logger: logger}

	tw := cfg.Twilio
	if tw == nil || tw.AccountSID == "" || tw.AuthToken == "" || tw.FromNumber == "" {
		logger.Warn("whatsapp channel not configured, alerts will be recorded as failed")

		return svc
	}

	svc.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: tw.AccountSID,
		Password: tw.AuthToken,
	})
	svc.fromNumber = tw.FromNumber
	logger.Info("whatsapp channel initialized", slog.String("from", tw.FromNumber))

	return svc
}

// Send delivers one message body to a WhatsApp number.
func (s *twilioMessageService) Send(ctx context.Context, to, body string) error {
	if !s.IsConfigured() {
		return ErrChannelNotConfigured
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.fromNumber)
	params.SetTo("whatsapp:" + to)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return errors.Wrap(err, "failed to send whatsapp message")
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.DebugContext(ctx, "whatsapp message sent",
		slog.String("to", to),
		slog.String("sid", sid),
	)

	return nil
}

// IsConfigured reports whether the Twilio credentials were provided.
func (s *twilioMessageService) IsConfigured() bool {
	return s.client != nil && s.fromNumber != ""
}
