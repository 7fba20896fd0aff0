package store

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the configured backend. The returned Closer must be closed on exit.
func Open(backend, filePath, dbPath string) (HighScoreStore, io.Closer, error) {
	switch backend {
	case "", BackendFile:
		log.Debug().Str("backend", BackendFile).Str("path", filePath).Msg("high score store")
		return NewFileStore(filePath), nopCloser{}, nil
	case BackendSQLite:
		s, err := OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("backend", BackendSQLite).Str("path", dbPath).Msg("high score store")
		return s, s, nil
	case BackendMemory:
		log.Debug().Str("backend", BackendMemory).Msg("high score store")
		return NewMemoryStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown high score backend %q", backend)
	}
}
