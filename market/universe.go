package market

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoSeries       = errors.New("no series loaded")
	ErrUnknownSymbol  = errors.New("unknown symbol")
	ErrSelectionRange = errors.New("selection out of range")
)

// Universe is the ordered set of series loaded from one price file.
type Universe []Series

func (u Universe) Symbols() []string {
	out := make([]string, len(u))
	for i, s := range u {
		out[i] = s.Symbol
	}
	return out
}

// Lookup finds a series by symbol, ignoring case.
func (u Universe) Lookup(symbol string) (Series, error) {
	if len(u) == 0 {
		return Series{}, ErrNoSeries
	}
	want := strings.TrimSpace(symbol)
	for _, s := range u {
		if strings.EqualFold(s.Symbol, want) {
			return s, nil
		}
	}
	return Series{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
}

// At returns the series at a 1-based menu position.
func (u Universe) At(n int) (Series, error) {
	if len(u) == 0 {
		return Series{}, ErrNoSeries
	}
	if n < 1 || n > len(u) {
		return Series{}, fmt.Errorf("%w: %d (have %d)", ErrSelectionRange, n, len(u))
	}
	return u[n-1], nil
}

// Select resolves a menu choice: a 1-based number or a symbol.
func (u Universe) Select(choice string) (Series, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(choice)); err == nil {
		return u.At(n)
	}
	return u.Lookup(choice)
}

// Validate checks every series and rejects duplicate symbols.
func (u Universe) Validate() error {
	if len(u) == 0 {
		return ErrNoSeries
	}
	seen := make(map[string]bool, len(u))
	for _, s := range u {
		if err := s.Validate(); err != nil {
			return err
		}
		key := strings.ToUpper(s.Symbol)
		if seen[key] {
			return fmt.Errorf("duplicate symbol %s", s.Symbol)
		}
		seen[key] = true
	}
	return nil
}
