package inbound

import "github.com/shandysiswandi/gotp/internal/pkg/router"

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/email/send", end.Send)
	r.GET("/api/v1/email/health", end.Health)
}
