package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gotp/internal/email"
	"github.com/shandysiswandi/gotp/internal/otp"
)

func (a *App) initModules() {
	if err := otp.New(otp.Dependency{
		Store:      a.store,
		Limiter:    a.limiter,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
		Router:     a.router,
		Mail:       a.mail,
		SMS:        a.sms,
	}); err != nil {
		slog.Error("failed to init module otp", "error", err)
		os.Exit(1)
	}

	if err := email.New(email.Dependency{
		Limiter:    a.limiter,
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Router:     a.router,
		Mail:       a.mail,
	}); err != nil {
		slog.Error("failed to init module email", "error", err)
		os.Exit(1)
	}
}
