package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/gotp/internal/otp/entity"
	"github.com/shandysiswandi/gotp/internal/pkg/clock"
	"github.com/shandysiswandi/gotp/internal/pkg/config"
	"github.com/shandysiswandi/gotp/internal/pkg/instrument"
	"github.com/shandysiswandi/gotp/internal/pkg/kvstore"
	"github.com/shandysiswandi/gotp/internal/pkg/ratelimit"
	"github.com/shandysiswandi/gotp/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// Failed attempt counters outlive a single validation call for this long.
const attemptsTTL = 5 * time.Minute

type delivery interface {
	Send(ctx context.Context, identifier, code string, channel entity.Channel) error
}

type limiter interface {
	CheckLimit(ctx context.Context, identifier, action string) (ratelimit.Decision, error)
}

type Usecase struct {
	store     kvstore.Store
	limiter   limiter
	delivery  delivery
	cfg       config.Config
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation

	codeLength  int
	expiry      time.Duration
	maxAttempts int
}

type Dependency struct {
	Store      kvstore.Store
	Limiter    limiter
	Delivery   delivery
	Config     config.Config
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func NewOTP(dep Dependency) *Usecase {
	codeLength := dep.Config.GetInt("otp.length")
	if codeLength <= 0 {
		codeLength = 6
	}

	expiry := dep.Config.GetMinute("otp.expiry_minutes")
	if expiry <= 0 {
		expiry = 5 * time.Minute
	}

	maxAttempts := dep.Config.GetInt("otp.max_attempts")
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &Usecase{
		store:       dep.Store,
		limiter:     dep.Limiter,
		delivery:    dep.Delivery,
		cfg:         dep.Config,
		clock:       dep.Clock,
		validator:   dep.Validator,
		ins:         dep.Instrument,
		codeLength:  codeLength,
		expiry:      expiry,
		maxAttempts: maxAttempts,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("otp.usecase").Start(ctx, name)
}
