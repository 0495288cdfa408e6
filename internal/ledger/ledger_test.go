package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeLedger creates a temp CSV file and returns its path.
func writeLedger(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeLedger(t,
		"date,balance",
		"2025-05-01,1000000",
		"2025-05-08,987500.50",
		"2025-05-15,960000",
	)

	samples, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("len(samples) = %d, want 3", len(samples))
	}
	if got := samples[0].Date.Format("2006-01-02"); got != "2025-05-01" {
		t.Errorf("first date = %s, want 2025-05-01", got)
	}
	if got := samples[1].Balance.String(); got != "987500.5" {
		t.Errorf("second balance = %s, want 987500.5", got)
	}
}

func TestRead_NoHeader(t *testing.T) {
	samples, err := Read(strings.NewReader("2025-05-01,1000000\n2025-05-08,900000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"bad date", "05/01/2025,1000000\n"},
		{"bad balance", "2025-05-01,one million\n"},
		{"out of order", "2025-05-08,900000\n2025-05-01,1000000\n"},
		{"duplicate date", "2025-05-01,1000000\n2025-05-01,900000\n"},
		{"wrong field count", "2025-05-01,1000000,extra\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tc.data)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader("date,balance\n"))
	if !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("err = %v, want ErrEmptyLedger", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
