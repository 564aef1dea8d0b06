package twilio

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	twiliorest "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsappPrefix = "whatsapp:"

// Config contains credentials and sender addresses for the Twilio account.
type Config struct {
	AccountSID   string
	AuthToken    string
	SMSFrom      string
	WhatsAppFrom string
}

// Client sends text messages through the Twilio REST API.
type Client struct {
	api    *twiliorest.RestClient
	cfg    Config
	logger zerolog.Logger
}

// New constructs a Twilio client instance.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf("twilio credentials must be provided")
	}

	api := twiliorest.NewRestClientWithParams(twiliorest.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Client{
		api:    api,
		cfg:    cfg,
		logger: logger.With().Str("component", "twilio").Logger(),
	}, nil
}

// SendSMS submits a plain SMS to the destination number in E.164 form.
func (c *Client) SendSMS(ctx context.Context, to, body string) (string, error) {
	if c.cfg.SMSFrom == "" {
		return "", fmt.Errorf("twilio sms sender not configured")
	}
	return c.send(ctx, c.cfg.SMSFrom, to, body)
}

// SendWhatsApp submits a WhatsApp message to the destination number in E.164 form.
func (c *Client) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	if c.cfg.WhatsAppFrom == "" {
		return "", fmt.Errorf("twilio whatsapp sender not configured")
	}

	from := c.cfg.WhatsAppFrom
	if !strings.HasPrefix(from, whatsappPrefix) {
		from = whatsappPrefix + from
	}
	if !strings.HasPrefix(to, whatsappPrefix) {
		to = whatsappPrefix + to
	}

	return c.send(ctx, from, to, body)
}

func (c *Client) send(ctx context.Context, from, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)

	message, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	sid := ""
	if message.Sid != nil {
		sid = *message.Sid
	}

	c.logger.Info().Str("sid", sid).Str("to", to).Msg("message dispatched")

	return sid, nil
}
