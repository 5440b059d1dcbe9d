package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gotp/internal/email/templates"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
	"github.com/shandysiswandi/gotp/internal/pkg/mail"
)

type SendInput struct {
	To       string `validate:"required,email"`
	Template string `validate:"required"`
	Data     map[string]any
	Subject  string
}

type SendOutput struct {
	Success   bool
	Message   string
	Remaining int
}

// Send renders the named template with the request data and mails the result.
//
// An explicit Subject overrides the one the template produced.
func (s *Usecase) Send(ctx context.Context, in SendInput) (*SendOutput, error) {
	ctx, span := s.startSpan(ctx, "Send")
	defer span.End()

	in.To = strings.TrimSpace(in.To)
	if in.Data == nil {
		return nil, goerror.NewInvalidFormat("Required fields: to (email), template (name), data (object)")
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	decision, err := s.limiter.CheckLimit(ctx, in.To, ActionSendEmail)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check rate limit", "email", in.To, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !decision.Allowed {
		slog.WarnContext(ctx, "rate limit exceeded", "email", in.To)
		return nil, goerror.NewBusiness("Too many email requests. Please try again later.", goerror.CodeTooManyRequest)
	}

	rendered, err := templates.Render(in.Template, in.Data)
	if err != nil {
		slog.WarnContext(ctx, "template rendering failed", "template", in.Template, "error", err)
		return nil, goerror.NewInvalidFormat(err.Error())
	}

	subject := rendered.Subject
	if in.Subject != "" {
		subject = in.Subject
	}

	if err := s.mail.Send(ctx, mail.Message{
		To:       []string{in.To},
		Subject:  subject,
		HTMLBody: rendered.HTML,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send email", "email", in.To, "template", in.Template, "error", err)
		return &SendOutput{
			Success:   false,
			Message:   "Failed to send email: " + err.Error(),
			Remaining: decision.Remaining,
		}, nil
	}

	slog.InfoContext(ctx, "email sent", "email", in.To, "template", in.Template)

	return &SendOutput{
		Success:   true,
		Message:   "Email sent successfully",
		Remaining: decision.Remaining,
	}, nil
}

// ListTemplates returns the names of the available templates.
func (s *Usecase) ListTemplates(ctx context.Context) []string {
	return templates.List()
}
