package inbound

import (
	"time"

	"github.com/shandysiswandi/gotp/internal/otp/entity"
	"github.com/shandysiswandi/gotp/internal/otp/usecase"
	"github.com/shandysiswandi/gotp/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Generate issues a one-time password and delivers it.
// @Summary Generate OTP
// @Description Generates a one-time password and sends it via the requested channel.
// @Tags OTP
// @Accept json
// @Param request body GenerateRequest true "Generation payload"
// @Success 200 {object} router.successResponse{data=GenerateResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 429 {object} router.errorResponse "Rate limit exceeded"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/otp/generate [post]
func (h *HTTPEndpoint) Generate(r *router.Request) (any, error) {
	var req GenerateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	channel := req.Channel
	if channel == "" {
		channel = "email"
	}

	out, err := h.uc.Generate(r.Context(), usecase.GenerateInput{
		Identifier: req.Identifier,
		Channel:    entity.ChannelFromString(channel),
	})
	if err != nil {
		return nil, err
	}

	return GenerateResponse{
		Success:   out.Success,
		Remaining: out.Remaining,
		message:   out.Message,
	}, nil
}

// Validate checks a submitted one-time password.
// @Summary Validate OTP
// @Description Validates a one-time password for the identifier.
// @Tags OTP
// @Accept json
// @Param request body ValidateRequest true "Validation payload"
// @Success 200 {object} router.successResponse{data=ValidateResponse} "Code accepted"
// @Failure 400 {object} router.errorResponse "Invalid code or request body"
// @Failure 429 {object} router.errorResponse "Rate limit exceeded"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/otp/validate [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	var req ValidateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Validate(r.Context(), usecase.ValidateInput{
		Identifier: req.Identifier,
		Code:       req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return ValidateResponse{
		Success: out.Success,
		message: out.Message,
	}, nil
}

// Health reports liveness of the OTP endpoints.
// @Summary OTP health check
// @Tags OTP
// @Produce json
// @Success 200 {object} router.successResponse{data=HealthResponse} "Service is running"
// @Router /health [get]
func (h *HTTPEndpoint) Health(r *router.Request) (any, error) {
	return HealthResponse{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
