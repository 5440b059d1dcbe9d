package mail

import (
	"context"
	"errors"
	"fmt"
)

const (
	// DriverSMTP selects the net/smtp implementation.
	DriverSMTP = "smtp"
	// DriverBrevo selects the Brevo API implementation.
	DriverBrevo = "brevo"
	// DriverSES selects the Amazon SES implementation.
	DriverSES = "ses"
)

// ErrUnknownDriver is returned when the driver name is not recognized.
var ErrUnknownDriver = errors.New("unknown mail driver")

// FactoryOptions carries the configuration for every supported driver; only
// the section matching the chosen driver is read.
type FactoryOptions struct {
	SMTP  SMTPConfig
	Brevo BrevoConfig
	SES   SESConfig
}

// NewFromDriver constructs the Mail implementation named by driver.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Mail, error) {
	switch driver {
	case DriverSMTP:
		return NewSMTP(opts.SMTP)
	case DriverBrevo:
		return NewBrevo(opts.Brevo)
	case DriverSES:
		return NewSES(ctx, opts.SES)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
