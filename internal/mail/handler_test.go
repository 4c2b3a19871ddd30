package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type fakeSender struct {
	last Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m Message) error {
	f.last = m
	return f.err
}

func newMailRouter(sender Sender, store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(sender, store, "noreply@fairhall.local", true, zerolog.Nop()).Register(router)
	return router
}

func sendMail(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/mail/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendRecordsDelivery(t *testing.T) {
	sender := &fakeSender{}
	store := NewMemoryStore()
	router := newMailRouter(sender, store)

	w := sendMail(router, `{"to":["max@example.com"],"subject":"Your contract","body":"hello"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp sendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Status != "sent" || resp.MessageID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if sender.last.From != "noreply@fairhall.local" {
		t.Fatalf("from = %q, want the default sender", sender.last.From)
	}

	record, ok := store.Find(context.Background(), resp.MessageID)
	if !ok {
		t.Fatalf("delivery not recorded")
	}
	if record.Status != "sent" {
		t.Fatalf("record status = %q", record.Status)
	}
}

func TestSendFailureIsRecordedAndReported(t *testing.T) {
	sender := &fakeSender{err: errors.New("SMTP timeout")}
	store := NewMemoryStore()
	router := newMailRouter(sender, store)

	w := sendMail(router, `{"to":["max@example.com"],"subject":"Your contract","body":"hello"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var resp sendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.Status != "failed" || !strings.Contains(resp.Message, "SMTP timeout") {
		t.Fatalf("unexpected response: %+v", resp)
	}

	record, ok := store.Find(context.Background(), resp.MessageID)
	if !ok {
		t.Fatalf("failed delivery not recorded")
	}
	if record.Status != "failed" || record.ErrorMessage != "SMTP timeout" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestSendValidation(t *testing.T) {
	router := newMailRouter(&fakeSender{}, NewMemoryStore())

	for _, body := range []string{
		`{"subject":"s","body":"b"}`,
		`{"to":[],"subject":"s","body":"b"}`,
		`{"to":["a@b.c"],"body":"b"}`,
		`not json`,
	} {
		if w := sendMail(router, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestStatusAndHistory(t *testing.T) {
	store := NewMemoryStore()
	router := newMailRouter(&fakeSender{}, store)

	sendMail(router, `{"to":["max@example.com"],"subject":"first","body":"x"}`)
	sendMail(router, `{"to":["max@example.com"],"subject":"second","body":"x"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/mail/history?limit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var history struct {
		Count  int              `json:"count"`
		Emails []DeliveryRecord `json:"emails"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("history is not JSON: %v", err)
	}
	if history.Count != 1 || history.Emails[0].Subject != "second" {
		t.Fatalf("unexpected history: %+v", history)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/mail/status/"+history.Emails[0].MessageID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status lookup = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/mail/status/unknown", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown status lookup = %d, want 404", w.Code)
	}
}
