// Package graphdocs resolves shared spreadsheet documents through the
// Microsoft Graph API.
package graphdocs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://graph.microsoft.com/v1.0"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the Graph token is expired or invalid.
	ErrUnauthorized = errors.New("graphdocs: unauthorized (token expired or invalid)")
	// ErrRateLimited indicates the Graph API rate limit was hit.
	ErrRateLimited = errors.New("graphdocs: rate limited")
	// ErrNoSpreadsheet indicates the shared folder holds no .xlsx files.
	ErrNoSpreadsheet = errors.New("graphdocs: no spreadsheet found in shared folder")
)

// Client looks up shared drive items through Microsoft Graph.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given bearer token.
// Returns nil if the token is empty.
func NewClient(token string) *Client {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// Spreadsheet describes a resolved workbook in a shared folder.
type Spreadsheet struct {
	Name         string
	LastModified time.Time
	DownloadURL  string
}

// ResolveLatestSpreadsheet resolves a SharePoint/OneDrive share link to the
// most recently modified .xlsx file in the shared folder and returns its
// short-lived download URL.
func (c *Client) ResolveLatestSpreadsheet(ctx context.Context, shareURL string) (*Spreadsheet, error) {
	shareID := encodeShareID(shareURL)
	path := fmt.Sprintf("/shares/%s/driveItem/children?%s", shareID,
		url.Values{"$orderby": {"lastModifiedDateTime desc"}}.Encode())

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var listing childListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("graphdocs: parsing children: %w", err)
	}

	for _, item := range listing.Value {
		if item.Folder != nil {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(item.Name), ".xlsx") {
			continue
		}
		sheet := &Spreadsheet{
			Name:        item.Name,
			DownloadURL: item.DownloadURL,
		}
		if t, err := time.Parse(time.RFC3339, item.LastModifiedDateTime); err == nil {
			sheet.LastModified = t
		}
		return sheet, nil
	}

	return nil, ErrNoSpreadsheet
}

// get performs an authenticated GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("graphdocs: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphdocs: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("graphdocs: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("graphdocs: reading response: %w", err)
	}
	return body, nil
}

// encodeShareID converts a share URL into the Graph sharing token form:
// "u!" followed by unpadded URL-safe base64 of the link.
func encodeShareID(shareURL string) string {
	return "u!" + base64.RawURLEncoding.EncodeToString([]byte(shareURL))
}
