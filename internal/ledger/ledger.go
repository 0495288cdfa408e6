// Package ledger loads externally produced balance series from CSV files.
//
// A ledger file holds one sample per row as "date,balance" with dates in
// YYYY-MM-DD form. An optional header row is skipped. Rows must be in
// ascending date order with no duplicate dates, so a loaded series can be
// used directly as a projection baseline.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"cashlens/internal/model"
)

// ErrEmptyLedger is returned when a ledger file contains no samples.
var ErrEmptyLedger = errors.New("ledger: no samples")

// LoadFile reads a balance series from a CSV file on disk.
func LoadFile(path string) ([]model.BalanceSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	samples, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: %w", path, err)
	}
	return samples, nil
}

// Read parses a balance series from CSV data.
func Read(r io.Reader) ([]model.BalanceSample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var samples []model.BalanceSample

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		// Header rows look like "date,balance" in any casing.
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "date") {
			continue
		}

		date, err := model.ParseDate(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: balance %q: %w", line, rec[1], err)
		}

		if n := len(samples); n > 0 {
			prev := samples[n-1].Date
			if !date.After(prev) {
				return nil, fmt.Errorf("row %d: date %s not after %s", line,
					date.Format(model.DateLayout), prev.Format(model.DateLayout))
			}
		}

		samples = append(samples, model.BalanceSample{Date: date, Balance: balance})
	}

	if len(samples) == 0 {
		return nil, ErrEmptyLedger
	}
	return samples, nil
}
