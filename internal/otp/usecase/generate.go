package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gotp/internal/otp/entity"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
)

type GenerateInput struct {
	Identifier string
	Channel    entity.Channel
}

type GenerateOutput struct {
	Success   bool
	Message   string
	Remaining int
}

type generateValidation struct {
	Email string `validate:"omitempty,email"`
	Phone string `validate:"omitempty,phone"`
}

// Generate issues a fresh code for the identifier, stores it with its expiry,
// and hands it to the delivery channel.
//
// A replacement code overwrites any previous one. Delivery failure does not
// roll the stored code back; the caller may still validate it if it arrived
// through another path.
func (s *Usecase) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	ctx, span := s.startSpan(ctx, "Generate")
	defer span.End()

	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" {
		return nil, goerror.NewInvalidFormat("Identifier (email or phone) is required")
	}

	v := generateValidation{}
	switch in.Channel {
	case entity.ChannelEmail:
		v.Email = identifier
	case entity.ChannelSMS:
		v.Phone = identifier
	default:
		return nil, goerror.NewInvalidFormat("Unsupported delivery channel")
	}
	if err := s.validator.Validate(v); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	decision, err := s.limiter.CheckLimit(ctx, identifier, entity.ActionGenerate)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check rate limit", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !decision.Allowed {
		slog.WarnContext(ctx, "rate limit exceeded", "identifier", identifier)
		return nil, goerror.NewBusiness("Too many requests. Please try again later.", goerror.CodeTooManyRequest)
	}

	code, err := GenerateCode(s.codeLength, false)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate code", "error", err)
		return nil, goerror.NewServer(err)
	}

	record := entity.Record{
		Code:      code,
		ExpiresAt: s.clock.Now().Add(s.expiry).UnixMilli(),
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode otp record", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.store.Set(ctx, entity.Key(identifier), string(encoded), s.expiry); err != nil {
		slog.ErrorContext(ctx, "failed to store otp record", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.delivery.Send(ctx, identifier, code, in.Channel); err != nil {
		slog.ErrorContext(ctx, "failed to deliver otp", "identifier", identifier, "channel", in.Channel.String(), "error", err)
		return &GenerateOutput{
			Success:   false,
			Message:   "Failed to send OTP: " + err.Error(),
			Remaining: decision.Remaining,
		}, nil
	}

	slog.InfoContext(ctx, "otp generated", "identifier", identifier, "channel", in.Channel.String())

	return &GenerateOutput{
		Success:   true,
		Message:   "OTP sent successfully via " + in.Channel.String(),
		Remaining: decision.Remaining,
	}, nil
}
