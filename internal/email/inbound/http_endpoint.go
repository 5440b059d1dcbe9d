package inbound

import (
	"context"
	"time"

	"github.com/shandysiswandi/gotp/internal/email/usecase"
	"github.com/shandysiswandi/gotp/internal/pkg/router"
)

type uc interface {
	Send(ctx context.Context, in usecase.SendInput) (*usecase.SendOutput, error)
	ListTemplates(ctx context.Context) []string
}

type HTTPEndpoint struct {
	uc uc
}

// Send renders a template and emails it to a recipient.
// @Summary Send templated email
// @Description Renders the named template with the given data and sends it.
// @Tags Email
// @Security ApiKeyAuth
// @Accept json
// @Param request body SendRequest true "Send payload"
// @Success 200 {object} router.successResponse{data=SendResponse} "Email sent"
// @Failure 400 {object} router.errorResponse "Invalid request body or template"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 429 {object} router.errorResponse "Rate limit exceeded"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/email/send [post]
func (h *HTTPEndpoint) Send(r *router.Request) (any, error) {
	var req SendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Send(r.Context(), usecase.SendInput{
		To:       req.To,
		Template: req.Template,
		Data:     req.Data,
		Subject:  req.Subject,
	})
	if err != nil {
		return nil, err
	}

	return SendResponse{
		Success:   out.Success,
		Remaining: out.Remaining,
		message:   out.Message,
	}, nil
}

// Health reports liveness and the available templates.
// @Summary Email health check
// @Tags Email
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=HealthResponse} "Service is running"
// @Router /api/v1/email/health [get]
func (h *HTTPEndpoint) Health(r *router.Request) (any, error) {
	return HealthResponse{
		Success:            true,
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
		AvailableTemplates: h.uc.ListTemplates(r.Context()),
	}, nil
}
