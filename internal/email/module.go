package email

import (
	"github.com/shandysiswandi/gotp/internal/email/inbound"
	"github.com/shandysiswandi/gotp/internal/email/usecase"
	"github.com/shandysiswandi/gotp/internal/pkg/config"
	"github.com/shandysiswandi/gotp/internal/pkg/instrument"
	"github.com/shandysiswandi/gotp/internal/pkg/mail"
	"github.com/shandysiswandi/gotp/internal/pkg/ratelimit"
	"github.com/shandysiswandi/gotp/internal/pkg/router"
	"github.com/shandysiswandi/gotp/internal/pkg/validator"
)

type Dependency struct {
	Limiter    *ratelimit.Limiter
	Config     config.Config
	Instrument instrument.Instrumentation
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	uc := usecase.NewEmail(usecase.Dependency{
		Mail:       dep.Mail,
		Limiter:    dep.Limiter,
		Config:     dep.Config,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
