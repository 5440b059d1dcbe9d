// Package delivery fans a generated code out to the channel the caller
// requested.
package delivery

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/gotp/internal/email/templates"
	"github.com/shandysiswandi/gotp/internal/otp/entity"
	"github.com/shandysiswandi/gotp/internal/pkg/config"
	"github.com/shandysiswandi/gotp/internal/pkg/instrument"
	"github.com/shandysiswandi/gotp/internal/pkg/mail"
	"github.com/shandysiswandi/gotp/internal/pkg/sms"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Delivery struct {
	mail mail.Mail
	sms  sms.Sender
	cfg  config.Config
	ins  instrument.Instrumentation
}

func New(m mail.Mail, s sms.Sender, cfg config.Config, ins instrument.Instrumentation) *Delivery {
	return &Delivery{mail: m, sms: s, cfg: cfg, ins: ins}
}

// Send delivers a code to the identifier over the given channel.
func (d *Delivery) Send(ctx context.Context, identifier, code string, channel entity.Channel) error {
	ctx, span := d.ins.Tracer("otp.delivery").Start(ctx, "Send",
		trace.WithAttributes(attribute.String("channel", channel.String())),
	)
	defer span.End()

	switch channel {
	case entity.ChannelEmail:
		return d.sendEmail(ctx, identifier, code)
	case entity.ChannelSMS:
		return d.sms.Send(ctx, sms.Message{
			To:   identifier,
			Body: fmt.Sprintf("Your verification code is %s", code),
		})
	default:
		return fmt.Errorf("unsupported delivery channel: %s", channel)
	}
}

func (d *Delivery) sendEmail(ctx context.Context, to, code string) error {
	expiryMinutes := d.cfg.GetInt("otp.expiry_minutes")
	if expiryMinutes <= 0 {
		expiryMinutes = 5
	}

	rendered, err := templates.Render("otp", map[string]any{
		"otp":           code,
		"expiryMinutes": expiryMinutes,
	})
	if err != nil {
		return fmt.Errorf("render otp email: %w", err)
	}

	return d.mail.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
	})
}
