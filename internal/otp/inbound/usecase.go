package inbound

import (
	"context"

	"github.com/shandysiswandi/gotp/internal/otp/usecase"
)

type uc interface {
	Generate(ctx context.Context, in usecase.GenerateInput) (*usecase.GenerateOutput, error)
	Validate(ctx context.Context, in usecase.ValidateInput) (*usecase.ValidateOutput, error)
}
