package exercise

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Rates maps a sport to calories burned per minute or per repetition.
type Rates map[Sport]float64

// DefaultRates returns the built-in calorie rates.
func DefaultRates() Rates {
	return Rates{
		SportRunning:  10,
		SportSwimming: 12,
		SportCycling:  8,
		SportPullups:  0.5,
		SportPushups:  0.5,
		SportWeights:  0.6,
	}
}

// Rate returns the rate for sport.
func (r Rates) Rate(sport Sport) (float64, bool) {
	rate, ok := r[sport]
	return rate, ok
}

type ratesFile struct {
	Rates map[string]float64 `toml:"rates"`
}

// LoadRates reads a TOML document with a [rates] table and merges its
// entries over DefaultRates.
//
//	[rates]
//	running = 11.5
func LoadRates(r io.Reader) (Rates, error) {
	if r == nil {
		return nil, errors.New("rates reader is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rates: %w", err)
	}
	var file ratesFile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}

	rates := DefaultRates()
	for name, rate := range file.Rates {
		sport, ok := ParseSport(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("rates: unsupported sport %q", name)
		}
		if rate < 0 {
			return nil, fmt.Errorf("rates: %s rate must not be negative", sport)
		}
		rates[sport] = rate
	}
	return rates, nil
}

// LoadRatesFile loads rates from path. An empty path yields DefaultRates.
func LoadRatesFile(path string) (Rates, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultRates(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rates file: %w", err)
	}
	defer f.Close()
	return LoadRates(f)
}
