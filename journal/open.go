package journal

import (
	"fmt"

	"github.com/rustyeddy/besttrade/config"
)

// Open returns the journal described by cfg.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return Noop{}, nil
	case "csv":
		j, err := NewCSV(cfg.Path)
		if err != nil {
			return nil, err
		}
		return j, nil
	case "sqlite":
		j, err := NewSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}
