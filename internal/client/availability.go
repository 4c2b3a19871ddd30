package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mchexpo/fairhall-contracts/internal/model"
)

// AvailabilityClient is a thin adapter over the fair service's capacity
// check. One request per call, no retries; the bounded timeout lives on the
// underlying http.Client.
type AvailabilityClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewAvailabilityClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AvailabilityClient {
	return &AvailabilityClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type fairCheckRequest struct {
	FairID       int `json:"fairId"`
	HallID       int `json:"hallId"`
	SquareMeters int `json:"squareMeters"`
}

type fairCheckResponse struct {
	Message     string `json:"message"`
	ErrorCode   string `json:"errorCode"`
	HallName    string `json:"hallName"`
	RemainingM2 int    `json:"remainingSquareMeters"`
}

// Check translates the fair service response into an Availability value.
// The declared errorCode in the body is authoritative over the transport
// status: a success status carrying an error-shaped body is treated as a
// malformed response, never as availability.
func (c *AvailabilityClient) Check(ctx context.Context, fairID, hallID, squareMeters int) (model.Availability, error) {
	payload, _ := json.Marshal(fairCheckRequest{
		FairID:       fairID,
		HallID:       hallID,
		SquareMeters: squareMeters,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/fairs", bytes.NewReader(payload))
	if err != nil {
		return model.Availability{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Availability{}, err
	}
	defer resp.Body.Close()

	var out fairCheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.Availability{}, fmt.Errorf("decoding availability response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out.ErrorCode != "" {
			c.log.Warn().Int("status", resp.StatusCode).Str("error_code", out.ErrorCode).
				Msg("availability response contradicts its status code")
			return model.Availability{}, fmt.Errorf("inconsistent availability response: status %d with error code %q", resp.StatusCode, out.ErrorCode)
		}
		return model.Availability{
			Available:   true,
			HallName:    out.HallName,
			RemainingM2: out.RemainingM2,
			Reason:      out.Message,
		}, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return model.Availability{
			Available: false,
			HallName:  out.HallName,
			Reason:    reasonOrStatus(out.Message, resp.StatusCode),
			Code:      rejectionCode(out.ErrorCode, resp.StatusCode),
		}, nil

	default:
		return model.Availability{}, fmt.Errorf("availability service returned %d", resp.StatusCode)
	}
}

func rejectionCode(declared string, status int) model.ReasonCode {
	if declared != "" {
		return model.ReasonCode(declared)
	}
	if status == http.StatusNotFound {
		return model.CodeFairNotFound
	}
	return model.CodeHallFull
}

func reasonOrStatus(message string, status int) string {
	if message != "" {
		return message
	}
	return http.StatusText(status)
}
