package sms

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogSenderSend(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	sender := NewLogSender()

	err := sender.Send(context.Background(), Message{To: "+15551234567", Body: "Your verification code is 482913"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "+15551234567") {
		t.Errorf("log output missing recipient: %s", out)
	}
	if !strings.Contains(out, "sms dispatched") {
		t.Errorf("log output missing message: %s", out)
	}
}
