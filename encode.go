package stockplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FormatVersion is the version of the portfolio file format written by EncodePortfolio.
const FormatVersion = 1

// This file persists a portfolio as a single, human-readable JSON document.
// It is meant to be small enough to be edited by hand and kept in git.

// jportfolio is the persisted document.
type jportfolio struct {
	Version int `json:"version"`
	Portfolio
}

// DecodePortfolio reads a portfolio document.
//
// Documents with no version are read as version 1. Decoding does not
// validate records, see Portfolio.Check.
func DecodePortfolio(r io.Reader) (Portfolio, error) {
	var doc jportfolio
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Portfolio{}, fmt.Errorf("format error: %w", err)
	}
	switch doc.Version {
	case 0, FormatVersion:
	default:
		return Portfolio{}, fmt.Errorf("unsupported portfolio format version %d, want %d", doc.Version, FormatVersion)
	}
	return doc.Portfolio, nil
}

// EncodePortfolio writes p as an indented JSON document.
func EncodePortfolio(w io.Writer, p Portfolio) error {
	doc := jportfolio{Version: FormatVersion, Portfolio: p.clone()}
	// empty collections are written as [] rather than null.
	emptyIfNil(&doc.Grants)
	emptyIfNil(&doc.Loans)
	emptyIfNil(&doc.StockPrices)
	emptyIfNil(&doc.ShareExchanges)
	emptyIfNil(&doc.StockSales)
	emptyIfNil(&doc.ProgramConfigs)
	for i, g := range doc.Grants {
		emptyIfNil(&g.VestingSchedule)
		doc.Grants[i] = g
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	return nil
}

func emptyIfNil[T any](s *[]T) {
	if *s == nil {
		*s = []T{}
	}
}

// LoadPortfolio reads the portfolio file at path.
// A missing file is an empty portfolio, not an error.
func LoadPortfolio(path string) (Portfolio, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Portfolio{}, nil
	}
	if err != nil {
		return Portfolio{}, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return Portfolio{}, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	return p, nil
}

// SavePortfolio writes the portfolio file at path, creating its directory if needed.
//
// The file is written next to its final destination and then renamed, so
// that a failure never leaves a truncated portfolio behind.
func SavePortfolio(path string, p Portfolio) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for portfolio %q: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodePortfolio(tmp, p); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing portfolio file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing portfolio file %q: %w", path, err)
	}
	return nil
}
