package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const brevoSendEndpoint = "https://api.brevo.com/v3/smtp/email"

// ErrBrevoAPIKeyRequired is returned when the API key is missing.
var ErrBrevoAPIKeyRequired = errors.New("brevo api key is required")

// Brevo is a Mail implementation backed by the Brevo transactional email API.
type Brevo struct {
	apiKey      string
	endpoint    string
	defaultFrom string
	client      *http.Client
}

// BrevoConfig configures the Brevo implementation.
type BrevoConfig struct {
	// APIKey authenticates against the Brevo API.
	APIKey string
	// From is the default sender when Message.From is empty.
	From string
	// Endpoint overrides the API URL, mainly for tests.
	Endpoint string
	// Timeout bounds a single API call; defaults to 10s.
	Timeout time.Duration
}

// NewBrevo constructs a Brevo mail sender.
func NewBrevo(cfg BrevoConfig) (*Brevo, error) {
	if cfg.APIKey == "" {
		return nil, ErrBrevoAPIKeyRequired
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = brevoSendEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Brevo{
		apiKey:      cfg.APIKey,
		endpoint:    cfg.Endpoint,
		defaultFrom: cfg.From,
		client:      &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type brevoAddress struct {
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Cc          []brevoAddress `json:"cc,omitempty"`
	Bcc         []brevoAddress `json:"bcc,omitempty"`
	Subject     string         `json:"subject"`
	TextContent string         `json:"textContent,omitempty"`
	HTMLContent string         `json:"htmlContent,omitempty"`
}

// Send delivers a message through the Brevo API.
func (b *Brevo) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = b.defaultFrom
	}
	if from == "" {
		return ErrSMTPNoSender
	}

	payload := brevoPayload{
		Sender:      brevoAddress{Email: from},
		To:          toBrevoAddresses(msg.To),
		Cc:          toBrevoAddresses(msg.Cc),
		Bcc:         toBrevoAddresses(msg.Bcc),
		Subject:     msg.Subject,
		TextContent: msg.TextBody,
		HTMLContent: msg.HTMLBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode brevo payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build brevo request: %w", err)
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("call brevo api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("brevo api responded %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (b *Brevo) Close() error {
	b.client.CloseIdleConnections()

	return nil
}

func toBrevoAddresses(emails []string) []brevoAddress {
	if len(emails) == 0 {
		return nil
	}

	addrs := make([]brevoAddress, 0, len(emails))
	for _, email := range emails {
		addrs = append(addrs, brevoAddress{Email: email})
	}

	return addrs
}
