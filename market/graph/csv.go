package graph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rustyeddy/besttrade/market"
)

var csvHeader = []string{"symbol", "label", "price"}

// ReadCSV reads rows of symbol,label,price. Rows for the same symbol form one
// series in file order; series are returned in order of first appearance.
func ReadCSV(r io.Reader) (market.Universe, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, market.ErrNoSeries
		}
		return nil, err
	}
	for i, h := range csvHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != h {
			return nil, fmt.Errorf("unexpected csv header %v, want %v", header, csvHeader)
		}
	}

	index := map[string]int{}
	var u market.Universe
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		sym := strings.TrimSpace(rec[0])
		p, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q: %w", line, rec[2], err)
		}

		i, ok := index[strings.ToUpper(sym)]
		if !ok {
			i = len(u)
			index[strings.ToUpper(sym)] = i
			u = append(u, market.Series{Symbol: sym})
		}
		u[i].Labels = append(u[i].Labels, strings.TrimSpace(rec[1]))
		u[i].Prices = append(u[i].Prices, p)
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// WriteCSV writes u in the layout ReadCSV accepts.
func WriteCSV(w io.Writer, u market.Universe) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range u {
		for i, p := range s.Prices {
			if err := cw.Write([]string{s.Symbol, s.Label(i), strconv.FormatFloat(p, 'f', -1, 64)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
