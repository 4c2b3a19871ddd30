package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mchexpo/fairhall-contracts/internal/model"
)

// MailClient submits notification messages to the mail service. Callers
// treat any error as a delivery failure, never as a workflow-fatal one.
type MailClient struct {
	baseURL string
	http    *http.Client
}

func NewMailClient(baseURL string, timeout time.Duration) *MailClient {
	return &MailClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type sendMailRequest struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

type sendMailResponse struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

func (c *MailClient) Notify(ctx context.Context, to []string, subject, body string) (model.NotificationOutcome, error) {
	payload, _ := json.Marshal(sendMailRequest{To: to, Subject: subject, Body: body})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/mail/send", bytes.NewReader(payload))
	if err != nil {
		return model.NotificationOutcome{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.NotificationOutcome{}, err
	}
	defer resp.Body.Close()

	var out sendMailResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.NotificationOutcome{}, fmt.Errorf("decoding mail response: %w", err)
	}

	outcome := model.NotificationOutcome{
		MessageID: out.MessageID,
		Status:    out.Status,
		Message:   out.Message,
	}

	if resp.StatusCode >= 300 || (out.Status != "" && out.Status != "sent") {
		reason := out.Message
		if reason == "" {
			reason = fmt.Sprintf("mail service returned %d", resp.StatusCode)
		}
		return outcome, fmt.Errorf("%s", reason)
	}
	return outcome, nil
}
