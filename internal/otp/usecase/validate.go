package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gotp/internal/otp/entity"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
)

type ValidateInput struct {
	Identifier string
	Code       string
}

type ValidateOutput struct {
	Success bool
	Message string
}

// Validate checks a submitted code against the stored record.
//
// A match consumes the record and its attempt counter. A mismatch burns one
// attempt; once attempts run out or the record has expired, both keys are
// removed and the user must request a new code.
func (s *Usecase) Validate(ctx context.Context, in ValidateInput) (*ValidateOutput, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	identifier := strings.TrimSpace(in.Identifier)
	code := strings.TrimSpace(in.Code)
	if identifier == "" || code == "" {
		return nil, goerror.NewInvalidFormat("Identifier and OTP are required")
	}

	decision, err := s.limiter.CheckLimit(ctx, identifier, entity.ActionValidate)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check rate limit", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !decision.Allowed {
		slog.WarnContext(ctx, "rate limit exceeded for validation", "identifier", identifier)
		return nil, goerror.NewBusiness("Too many validation attempts. Please try again later.", goerror.CodeTooManyRequest)
	}

	key := entity.Key(identifier)
	attemptsKey := entity.AttemptsKey(identifier)

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		return &ValidateOutput{Success: false, Message: "OTP not found or expired"}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load otp record", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	var record entity.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		slog.ErrorContext(ctx, "failed to decode otp record", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if s.clock.Now().UnixMilli() > record.ExpiresAt {
		s.cleanup(ctx, key, attemptsKey)
		return &ValidateOutput{Success: false, Message: "OTP has expired"}, nil
	}

	attempts := 0
	if rawAttempts, err := s.store.Get(ctx, attemptsKey); err == nil {
		if n, convErr := strconv.Atoi(rawAttempts); convErr == nil {
			attempts = n
		}
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to load attempt counter", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if attempts >= s.maxAttempts {
		s.cleanup(ctx, key, attemptsKey)
		return &ValidateOutput{Success: false, Message: "Maximum validation attempts exceeded"}, nil
	}

	if code == record.Code {
		s.cleanup(ctx, key, attemptsKey)
		slog.InfoContext(ctx, "otp validated", "identifier", identifier)
		return &ValidateOutput{Success: true, Message: "OTP validated successfully"}, nil
	}

	if err := s.store.Set(ctx, attemptsKey, strconv.Itoa(attempts+1), attemptsTTL); err != nil {
		slog.ErrorContext(ctx, "failed to store attempt counter", "identifier", identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	remaining := s.maxAttempts - attempts - 1

	return &ValidateOutput{
		Success: false,
		Message: "Invalid OTP. " + strconv.Itoa(remaining) + " attempts remaining",
	}, nil
}

func (s *Usecase) cleanup(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			slog.WarnContext(ctx, "failed to delete key", "key", key, "error", err)
		}
	}
}
