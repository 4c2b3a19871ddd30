package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNotifySent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/mail/send" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			To      []string `json:"to"`
			Subject string   `json:"subject"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.To) != 1 || req.To[0] != "max@example.com" {
			t.Errorf("recipients = %v", req.To)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messageId":"msg-1","status":"sent","message":"email sent to 1 recipient(s)"}`))
	}))
	defer ts.Close()

	got, err := NewMailClient(ts.URL, 2*time.Second).Notify(
		context.Background(), []string{"max@example.com"}, "Your contract", "body")
	if err != nil {
		t.Fatalf("Notify error: %v", err)
	}
	if got.MessageID != "msg-1" || got.Status != "sent" {
		t.Fatalf("unexpected outcome: %+v", got)
	}
}

func TestNotifyDeliveryFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"messageId":"msg-2","status":"failed","message":"failed to send email: SMTP timeout"}`))
	}))
	defer ts.Close()

	got, err := NewMailClient(ts.URL, 2*time.Second).Notify(
		context.Background(), []string{"max@example.com"}, "Your contract", "body")
	if err == nil {
		t.Fatalf("expected an error for a failed delivery")
	}
	if !strings.Contains(err.Error(), "SMTP timeout") {
		t.Fatalf("err = %v, want the mail service's failure detail", err)
	}
	if got.Status != "failed" {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestNotifyFailedStatusInSuccessResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messageId":"msg-3","status":"failed","message":"mailbox unavailable"}`))
	}))
	defer ts.Close()

	_, err := NewMailClient(ts.URL, 2*time.Second).Notify(
		context.Background(), []string{"max@example.com"}, "Your contract", "body")
	if err == nil {
		t.Fatalf("declared status must win over the transport status code")
	}
}
