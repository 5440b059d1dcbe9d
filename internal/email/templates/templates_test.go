package templates

import (
	"reflect"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	want := []string{"booking", "custom", "otp", "welcome"}
	if got := List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
}

func TestRenderOTP(t *testing.T) {
	out, err := Render("otp", map[string]any{
		"otp":           "482913",
		"userName":      "Alex",
		"expiryMinutes": 10,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if out.Subject != "Your BusBuddy Verification Code" {
		t.Fatalf("subject = %q", out.Subject)
	}
	for _, want := range []string{"482913", "Hi Alex!", "Expires in 10 minutes"} {
		if !strings.Contains(out.HTML, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestRenderDefaults(t *testing.T) {
	out, err := Render("otp", map[string]any{"otp": "111222"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"Hi User!", "Expires in 5 minutes", "BusBuddy"} {
		if !strings.Contains(out.HTML, want) {
			t.Fatalf("body missing default %q", want)
		}
	}
}

func TestRenderBooking(t *testing.T) {
	out, err := Render("booking", map[string]any{
		"bookingId": "BK-1042",
		"route":     "Jakarta - Bandung",
		"date":      "2026-01-15",
		"seats":     "12A, 12B",
		"price":     "150000",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if out.Subject != "Booking Confirmed - BK-1042" {
		t.Fatalf("subject = %q", out.Subject)
	}
	if !strings.Contains(out.HTML, "Jakarta - Bandung") {
		t.Fatal("body missing route")
	}
}

func TestRenderCustomPassthrough(t *testing.T) {
	out, err := Render("custom", map[string]any{
		"subject":     "Promo",
		"htmlContent": "<b>50% off</b>",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if out.Subject != "Promo" {
		t.Fatalf("subject = %q", out.Subject)
	}
	if out.HTML != "<b>50% off</b>" {
		t.Fatalf("html = %q, want passthrough", out.HTML)
	}
}

func TestRenderCustomDefaultSubject(t *testing.T) {
	out, err := Render("custom", map[string]any{"htmlContent": "hello"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Subject != "Custom Email" {
		t.Fatalf("subject = %q", out.Subject)
	}
}

func TestRenderUnknown(t *testing.T) {
	_, err := Render("invoice", nil)
	if err == nil {
		t.Fatal("Render() expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "available: booking, custom, otp, welcome") {
		t.Fatalf("error = %v, should list available templates", err)
	}
}

func TestRenderEscapesData(t *testing.T) {
	out, err := Render("otp", map[string]any{
		"otp":      "123456",
		"userName": "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out.HTML, "<script>") {
		t.Fatal("body contains unescaped script tag")
	}
}
