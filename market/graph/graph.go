package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rustyeddy/besttrade/market"
)

// DefaultHours is the number of hourly samples per symbol in the graph files
// produced for the Nasdaq listing.
const DefaultHours = 16

const (
	FormatAuto  = "auto"
	FormatGraph = "graph"
	FormatCSV   = "csv"
)

type token struct {
	text string
	line int
}

// ReadGraph parses whitespace separated blocks of
//
//	SYMBOL
//	LABEL PRICE   (hours times)
//
// until EOF. Line breaks carry no meaning beyond error positions.
func ReadGraph(r io.Reader, hours int) (market.Universe, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("hours must be positive, got %d", hours)
	}

	var toks []token
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		for _, f := range strings.Fields(sc.Text()) {
			toks = append(toks, token{text: f, line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	var u market.Universe
	for i := 0; i < len(toks); {
		sym := toks[i]
		i++

		s := market.Series{
			Symbol: sym.text,
			Labels: make([]string, 0, hours),
			Prices: make(market.PriceSeries, 0, hours),
		}
		for k := 0; k < hours; k++ {
			if i+1 >= len(toks) {
				return nil, fmt.Errorf("symbol %s (line %d): truncated block, got %d of %d samples",
					sym.text, sym.line, k, hours)
			}
			label, raw := toks[i], toks[i+1]
			i += 2

			p, err := strconv.ParseFloat(raw.text, 64)
			if err != nil {
				return nil, fmt.Errorf("symbol %s line %d: bad price %q: %w", sym.text, raw.line, raw.text, err)
			}
			s.Labels = append(s.Labels, label.text)
			s.Prices = append(s.Prices, p)
		}
		u = append(u, s)
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Load opens path and reads it in the given format. FormatAuto picks CSV for
// a .csv extension and the graph layout otherwise.
func Load(path, format string, hours int) (market.Universe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch resolveFormat(path, format) {
	case FormatGraph:
		u, err := ReadGraph(f, hours)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return u, nil
	case FormatCSV:
		u, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return u, nil
	default:
		return nil, fmt.Errorf("unsupported price file format: %s", format)
	}
}

func resolveFormat(path, format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatGraph
}
