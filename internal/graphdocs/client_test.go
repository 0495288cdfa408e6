package graphdocs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-token")
	c.baseURL = srv.URL
	return c
}

func TestNewClient_EmptyToken(t *testing.T) {
	if c := NewClient(""); c != nil {
		t.Error("NewClient(\"\") != nil")
	}
	if c := NewClient("   "); c != nil {
		t.Error("NewClient(whitespace) != nil")
	}
}

func TestResolveLatestSpreadsheet(t *testing.T) {
	const shareURL = "https://contoso.sharepoint.com/:f:/s/fin/EXabc123"

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if !strings.HasPrefix(r.URL.Path, "/shares/u!") {
			t.Errorf("path = %q, want /shares/u!... prefix", r.URL.Path)
		}
		if got := r.URL.Query().Get("$orderby"); got != "lastModifiedDateTime desc" {
			t.Errorf("$orderby = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":[
			{"name":"archive","folder":{"childCount":3},"lastModifiedDateTime":"2025-08-20T09:00:00Z"},
			{"name":"notes.txt","lastModifiedDateTime":"2025-08-19T10:00:00Z"},
			{"name":"Budget-FY25.xlsx","lastModifiedDateTime":"2025-08-18T12:30:00Z","@microsoft.graph.downloadUrl":"https://download.example.com/budget"},
			{"name":"Old.xlsx","lastModifiedDateTime":"2025-07-01T08:00:00Z","@microsoft.graph.downloadUrl":"https://download.example.com/old"}
		]}`))
	})

	sheet, err := c.ResolveLatestSpreadsheet(context.Background(), shareURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Name != "Budget-FY25.xlsx" {
		t.Errorf("name = %q, want Budget-FY25.xlsx", sheet.Name)
	}
	if sheet.DownloadURL != "https://download.example.com/budget" {
		t.Errorf("download url = %q", sheet.DownloadURL)
	}
	if sheet.LastModified.IsZero() {
		t.Error("last modified not parsed")
	}
}

func TestResolveLatestSpreadsheet_NoSpreadsheet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":[{"name":"readme.md"}]}`))
	})

	_, err := c.ResolveLatestSpreadsheet(context.Background(), "https://example.com/share")
	if !errors.Is(err, ErrNoSpreadsheet) {
		t.Fatalf("err = %v, want ErrNoSpreadsheet", err)
	}
}

func TestResolveLatestSpreadsheet_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ResolveLatestSpreadsheet(context.Background(), "https://example.com/share")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestResolveLatestSpreadsheet_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.ResolveLatestSpreadsheet(context.Background(), "https://example.com/share")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestEncodeShareID(t *testing.T) {
	got := encodeShareID("https://example.com/x")
	if !strings.HasPrefix(got, "u!") {
		t.Fatalf("share id %q missing u! prefix", got)
	}
	if strings.ContainsAny(got[2:], "+/=") {
		t.Errorf("share id %q not unpadded URL-safe base64", got)
	}
}
