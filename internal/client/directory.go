package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mchexpo/fairhall-contracts/internal/model"
	"github.com/mchexpo/fairhall-contracts/internal/workflow"
)

// DirectoryClient looks up company records in the customer directory
// service.
type DirectoryClient struct {
	baseURL string
	http    *http.Client
}

func NewDirectoryClient(baseURL string, timeout time.Duration) *DirectoryClient {
	return &DirectoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// customerResponse mirrors the directory service schema. "adress" is the
// field name that service has always used on the wire.
type customerResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Birth       string            `json:"birth"`
	Address     string            `json:"adress"`
	PhoneNumber string            `json:"phoneNumber"`
	Credentials map[string]string `json:"credentials"`
}

func (c *DirectoryClient) Lookup(ctx context.Context, companyID string) (model.CompanyRecord, error) {
	endpoint := fmt.Sprintf("%s/api/customers/%s", c.baseURL, url.PathEscape(companyID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.CompanyRecord{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.CompanyRecord{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.CompanyRecord{}, workflow.ErrCompanyNotFound
	case resp.StatusCode >= 300:
		return model.CompanyRecord{}, fmt.Errorf("directory service returned %d", resp.StatusCode)
	}

	var out customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.CompanyRecord{}, fmt.Errorf("decoding directory response: %w", err)
	}
	if out.Name == "" {
		return model.CompanyRecord{}, fmt.Errorf("directory response is missing the company name")
	}

	return model.CompanyRecord{
		ID:      companyID,
		Name:    out.Name,
		Address: out.Address,
		Phone:   out.PhoneNumber,
		Email:   out.Credentials["email"],
	}, nil
}
