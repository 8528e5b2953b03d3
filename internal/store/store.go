// internal/store/store.go
//
// RoundStore is the append-only round history. The whole history lives under
// one key and is rewritten on every append; there is a single writer, so no
// locking or partial updates are needed.

package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kingrea/fairway/internal/config"
	"github.com/kingrea/fairway/internal/logging"
	"github.com/kingrea/fairway/internal/round"
)

const (
	// RoundsKey is the key the serialized history is stored under.
	RoundsKey = "rounds"

	sqliteFileName = "fairway.db"
)

// RoundStore holds every finished round in chronological order.
type RoundStore struct {
	backend Backend
	log     *logging.Logger
	rounds  []round.Summary
	now     func() time.Time
}

// OpenBackend builds the backend selected by cfg.
func OpenBackend(cfg *config.Config) (Backend, error) {
	switch cfg.StorageDriver() {
	case config.DriverSQLite:
		return NewSQLiteBackend(filepath.Join(cfg.StoragePath(), sqliteFileName))
	case config.DriverFile, "":
		return NewFileBackend(cfg.StoragePath())
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.StorageDriver())
	}
}

// Open loads the history from backend. A payload that cannot be decoded is
// treated as an empty history; the bad bytes are first copied to
// rounds.corrupt-<unix> so the next save cannot destroy them. If that copy
// cannot be written Open fails and nothing is overwritten.
func Open(backend Backend, log *logging.Logger) (*RoundStore, error) {
	if log == nil {
		log = logging.Discard()
	}
	s := &RoundStore{backend: backend, log: log, now: time.Now}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RoundStore) load() error {
	entry := s.log.WithComponent("store")
	data, ok, err := s.backend.Get(RoundsKey)
	if err != nil {
		return err
	}
	if !ok || len(data) == 0 {
		entry.Info("No round history yet")
		return nil
	}
	var rounds []round.Summary
	if err := json.Unmarshal(data, &rounds); err != nil {
		backupKey := fmt.Sprintf("%s.corrupt-%d", RoundsKey, s.now().Unix())
		entry.WithError(err).WithField("backup_key", backupKey).Warn("Round history unreadable, starting empty")
		if perr := s.backend.Put(backupKey, data); perr != nil {
			entry.WithError(perr).Error("Could not preserve unreadable history")
			return fmt.Errorf("store: preserve unreadable history as %s: %w", backupKey, perr)
		}
		return nil
	}
	s.rounds = rounds
	entry.WithField("rounds", len(rounds)).Info("Round history loaded")
	return nil
}

// Append adds summary to the end of the history and saves the full
// snapshot. If the save fails the append is undone.
func (s *RoundStore) Append(summary round.Summary) error {
	s.rounds = append(s.rounds, summary)
	if err := s.save(); err != nil {
		s.rounds = s.rounds[:len(s.rounds)-1]
		return err
	}
	s.log.WithComponent("store").WithField("rounds", len(s.rounds)).Info("Round saved")
	return nil
}

func (s *RoundStore) save() error {
	rounds := s.rounds
	if rounds == nil {
		rounds = []round.Summary{}
	}
	data, err := json.Marshal(rounds)
	if err != nil {
		return fmt.Errorf("store: encode rounds: %w", err)
	}
	return s.backend.Put(RoundsKey, data)
}

// Rounds returns a copy of the history, oldest first.
func (s *RoundStore) Rounds() []round.Summary {
	out := make([]round.Summary, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// Len returns the number of stored rounds.
func (s *RoundStore) Len() int {
	return len(s.rounds)
}

// Last returns the most recent round.
func (s *RoundStore) Last() (round.Summary, bool) {
	if len(s.rounds) == 0 {
		return round.Summary{}, false
	}
	return s.rounds[len(s.rounds)-1], true
}

// History returns every round before the most recent one, oldest first.
func (s *RoundStore) History() []round.Summary {
	if len(s.rounds) == 0 {
		return nil
	}
	return s.Rounds()[:len(s.rounds)-1]
}

// Close releases the backend.
func (s *RoundStore) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
