// Package store provides a SQLite-backed key-value store for plan settings and results.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rpgo/wealth-planner/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Well-known keys.
const (
	SettingsKey   = "settings"
	LatestPlanKey = "plan/latest"
	planPrefix    = "plan/"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("key not found")

// Store is an opaque key-value store. Values are stored as given; the typed helpers
// encode JSON.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, s.stamp())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Keys lists keys with the given prefix in sorted order.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key", len(prefix), prefix)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Clear removes every key.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	return nil
}

// LoadSettings returns the persisted settings, or ErrNotFound.
func (s *Store) LoadSettings() (*domain.Settings, error) {
	data, err := s.Get(SettingsKey)
	if err != nil {
		return nil, err
	}
	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings persists settings under SettingsKey.
func (s *Store) SaveSettings(settings *domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return s.Put(SettingsKey, data)
}

// SavePlan stores plan under a new id and as the latest plan, in one transaction.
func (s *Store) SavePlan(plan *domain.PlanResult) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}

	id := uuid.New().String()
	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	now := s.stamp()
	for _, key := range []string{planPrefix + id, LatestPlanKey} {
		if _, err := tx.Exec("INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
			key, data, now); err != nil {
			return "", fmt.Errorf("writing %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LatestPlan returns the most recently saved plan, or ErrNotFound.
func (s *Store) LatestPlan() (*domain.PlanResult, error) {
	return s.plan(LatestPlanKey)
}

// Plan returns the plan saved under id, or ErrNotFound.
func (s *Store) Plan(id string) (*domain.PlanResult, error) {
	return s.plan(planPrefix + id)
}

// PlanIDs lists the ids of all saved plans.
func (s *Store) PlanIDs() ([]string, error) {
	keys, err := s.Keys(planPrefix)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, k := range keys {
		if k == LatestPlanKey {
			continue
		}
		ids = append(ids, strings.TrimPrefix(k, planPrefix))
	}
	return ids, nil
}

func (s *Store) plan(key string) (*domain.PlanResult, error) {
	data, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	var plan domain.PlanResult
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &plan, nil
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
