// Package approval submits transaction decisions to the approvals service.
package approval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"cashlens/internal/model"
)

const (
	requestTimeout = 15 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrRejected indicates the service received the submission but did not
// accept it.
var ErrRejected = errors.New("approval: submission not accepted")

// Client posts approval decisions to a configured endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint URL.
// Returns nil if the endpoint is empty.
func NewClient(endpoint string) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{},
	}
}

// submission is the wire form of a decided draft. Dates are YYYY-MM-DD
// strings and empty optional fields are omitted.
type submission struct {
	Type         model.TransactionType `json:"type"`
	Amount       string                `json:"amount"`
	RequestDate  string                `json:"requestDate,omitempty"`
	DeliveryDate string                `json:"deliveryDate,omitempty"`
	PaymentTerms *int                  `json:"paymentTerms,omitempty"`
	Department   string                `json:"department,omitempty"`
	FundType     string                `json:"fundType,omitempty"`
	HireDate     string                `json:"hireDate,omitempty"`
	PayCycle     model.PayCycle        `json:"payCycle,omitempty"`
	Decision     model.Decision        `json:"decision"`
}

// response is the service acknowledgement.
type response struct {
	OK bool `json:"ok"`
}

// Submit posts the draft with its decision and reports whether the service
// accepted it.
func (c *Client) Submit(ctx context.Context, draft model.TransactionDraft, decision model.Decision) (bool, error) {
	payload := submission{
		Type:         draft.Type,
		Amount:       draft.Amount.String(),
		Department:   draft.Department,
		FundType:     draft.FundType,
		PayCycle:     draft.PayCycle,
		PaymentTerms: draft.PaymentTermsDays,
		Decision:     decision,
	}
	if !draft.RequestDate.IsZero() {
		payload.RequestDate = draft.RequestDate.Format(model.DateLayout)
	}
	if !draft.DeliveryDate.IsZero() {
		payload.DeliveryDate = draft.DeliveryDate.Format(model.DateLayout)
	}
	if !draft.HireDate.IsZero() {
		payload.HireDate = draft.HireDate.Format(model.DateLayout)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("approval: encoding submission: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("approval: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("approval: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("approval: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return false, fmt.Errorf("approval: reading response: %w", err)
	}

	var ack response
	if err := json.Unmarshal(raw, &ack); err != nil {
		return false, fmt.Errorf("approval: parsing response: %w", err)
	}
	if !ack.OK {
		return false, ErrRejected
	}
	return true, nil
}
