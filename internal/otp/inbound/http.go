package inbound

import "github.com/shandysiswandi/gotp/internal/pkg/router"

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/health", end.Health)
	r.POST("/api/v1/otp/generate", end.Generate)
	r.POST("/api/v1/otp/validate", end.Validate)
}
