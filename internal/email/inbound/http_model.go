package inbound

import "net/http"

type SendRequest struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
	Subject  string         `json:"subject"`
}

type SendResponse struct {
	Success   bool `json:"success"`
	Remaining int  `json:"remaining"`

	message string
}

func (r SendResponse) Message() string {
	return r.message
}

func (r SendResponse) StatusCode() int {
	if !r.Success {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

type HealthResponse struct {
	Success            bool     `json:"success"`
	Timestamp          string   `json:"timestamp"`
	AvailableTemplates []string `json:"availableTemplates"`
}

func (r HealthResponse) Message() string {
	return "Email service is running"
}
