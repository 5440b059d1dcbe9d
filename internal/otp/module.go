package otp

import (
	"github.com/shandysiswandi/gotp/internal/otp/inbound"
	"github.com/shandysiswandi/gotp/internal/otp/outbound/delivery"
	"github.com/shandysiswandi/gotp/internal/otp/usecase"
	"github.com/shandysiswandi/gotp/internal/pkg/clock"
	"github.com/shandysiswandi/gotp/internal/pkg/config"
	"github.com/shandysiswandi/gotp/internal/pkg/instrument"
	"github.com/shandysiswandi/gotp/internal/pkg/kvstore"
	"github.com/shandysiswandi/gotp/internal/pkg/mail"
	"github.com/shandysiswandi/gotp/internal/pkg/ratelimit"
	"github.com/shandysiswandi/gotp/internal/pkg/router"
	"github.com/shandysiswandi/gotp/internal/pkg/sms"
	"github.com/shandysiswandi/gotp/internal/pkg/validator"
)

type Dependency struct {
	Store      kvstore.Store
	Limiter    *ratelimit.Limiter
	Config     config.Config
	Instrument instrument.Instrumentation
	Clock      clock.Clocker
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
	SMS        sms.Sender
}

func New(dep Dependency) error {
	del := delivery.New(dep.Mail, dep.SMS, dep.Config, dep.Instrument)

	uc := usecase.NewOTP(usecase.Dependency{
		Store:      dep.Store,
		Limiter:    dep.Limiter,
		Delivery:   del,
		Config:     dep.Config,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
