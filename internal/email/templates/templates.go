// Package templates holds the built-in email templates and renders them with
// request data.
package templates

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// Rendered is the output of a template: a subject line and an HTML body.
type Rendered struct {
	Subject string
	HTML    string
}

type entry struct {
	subject  *template.Template
	body     *template.Template
	defaults map[string]any
}

var registry = map[string]entry{
	"otp": {
		subject: mustParse("otp.subject", otpSubject),
		body:    mustParse("otp.body", otpBody),
		defaults: map[string]any{
			"userName":      "User",
			"companyName":   "BusBuddy",
			"expiryMinutes": 5,
		},
	},
	"welcome": {
		subject: mustParse("welcome.subject", welcomeSubject),
		body:    mustParse("welcome.body", welcomeBody),
		defaults: map[string]any{
			"userName":    "User",
			"companyName": "BusBuddy",
		},
	},
	"booking": {
		subject: mustParse("booking.subject", bookingSubject),
		body:    mustParse("booking.body", bookingBody),
		defaults: map[string]any{
			"userName":    "Customer",
			"companyName": "BusBuddy",
		},
	},
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=zero").Parse(text))
}

// List returns the available template names in stable order.
func List() []string {
	names := make([]string, 0, len(registry)+1)
	for name := range registry {
		names = append(names, name)
	}
	names = append(names, "custom")
	sort.Strings(names)

	return names
}

// Render fills the named template with data.
//
// Data keys mirror the JSON request body, so they are camelCase. The custom
// template passes htmlContent through untouched; everything else is rendered
// with HTML escaping applied.
func Render(name string, data map[string]any) (*Rendered, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == "custom" {
		return renderCustom(data), nil
	}

	tpl, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found, available: %s", name, strings.Join(List(), ", "))
	}

	merged := make(map[string]any, len(tpl.defaults)+len(data))
	for k, v := range tpl.defaults {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}

	var subject, body strings.Builder
	if err := tpl.subject.Execute(&subject, merged); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := tpl.body.Execute(&body, merged); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	return &Rendered{Subject: subject.String(), HTML: body.String()}, nil
}

func renderCustom(data map[string]any) *Rendered {
	subject := "Custom Email"
	if s, ok := data["subject"].(string); ok && s != "" {
		subject = s
	}

	html := ""
	if h, ok := data["htmlContent"].(string); ok {
		html = h
	}

	return &Rendered{Subject: subject, HTML: html}
}
