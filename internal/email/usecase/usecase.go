package usecase

import (
	"context"

	"github.com/shandysiswandi/gotp/internal/pkg/config"
	"github.com/shandysiswandi/gotp/internal/pkg/instrument"
	"github.com/shandysiswandi/gotp/internal/pkg/mail"
	"github.com/shandysiswandi/gotp/internal/pkg/ratelimit"
	"github.com/shandysiswandi/gotp/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// ActionSendEmail keys the rate limit window for templated email sends.
const ActionSendEmail = "send_email"

type limiter interface {
	CheckLimit(ctx context.Context, identifier, action string) (ratelimit.Decision, error)
}

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	mail      repoMail
	limiter   limiter
	cfg       config.Config
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	Mail       repoMail
	Limiter    limiter
	Config     config.Config
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func NewEmail(dep Dependency) *Usecase {
	return &Usecase{
		mail:      dep.Mail,
		limiter:   dep.Limiter,
		cfg:       dep.Config,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("email.usecase").Start(ctx, name)
}
