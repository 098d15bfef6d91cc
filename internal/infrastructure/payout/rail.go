package payout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/gameplatform/internal/domain"
)

// rail implements domain.PayoutRail against an external transfer
// service. Transport-level failures are retried with backoff; a 4xx
// response is returned immediately as a PayoutRailError.
type rail struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewPayoutRail creates a new payout rail client
func NewPayoutRail(baseURL, apiKey string) domain.PayoutRail {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &rail{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

type railErrorBody struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

// Send delivers one transfer instruction to the rail
func (r *rail) Send(req domain.PayoutRequest) (domain.PayoutResponse, error) {
	var resp domain.PayoutResponse

	body, err := json.Marshal(req)
	if err != nil {
		return resp, fmt.Errorf("failed to marshal payout request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/transfers", r.baseURL)
	httpReq, err := retryablehttp.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return resp, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("x-api-key", r.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return resp, fmt.Errorf("payout rail request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, fmt.Errorf("failed to read payout rail response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK && httpResp.StatusCode != http.StatusCreated {
		var errBody railErrorBody
		railErr := &domain.PayoutRailError{
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", httpResp.StatusCode),
		}
		if json.Unmarshal(respBody, &errBody) == nil && errBody.Msg != "" {
			railErr.Code = errBody.Code
			railErr.Message = errBody.Msg
		}
		return resp, railErr
	}

	if err := json.Unmarshal(respBody, &resp); err != nil {
		return resp, fmt.Errorf("failed to decode payout rail response: %w", err)
	}

	return resp, nil
}
