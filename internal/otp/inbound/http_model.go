package inbound

import "net/http"

type GenerateRequest struct {
	Identifier string `json:"identifier"`
	Channel    string `json:"channel"`
}

type GenerateResponse struct {
	Success   bool `json:"success"`
	Remaining int  `json:"remaining"`

	message string
}

func (r GenerateResponse) Message() string {
	return r.message
}

func (r GenerateResponse) StatusCode() int {
	if !r.Success {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

type ValidateRequest struct {
	Identifier string `json:"identifier"`
	OTP        string `json:"otp"`
}

type ValidateResponse struct {
	Success bool `json:"success"`

	message string
}

func (r ValidateResponse) Message() string {
	return r.message
}

func (r ValidateResponse) StatusCode() int {
	if !r.Success {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

type HealthResponse struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

func (r HealthResponse) Message() string {
	return "OTP service is running"
}
