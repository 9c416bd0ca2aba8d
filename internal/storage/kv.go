package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// KV is the persistent key-value adapter the state store mirrors itself
// into. Every method swallows its own failures: reads report absence,
// writes log and move on. The in-memory state stays authoritative for the
// session whether or not the mirror survives.
type KV struct {
	db  *sql.DB
	log *logrus.Logger
	now func() time.Time
}

func NewKV(db *sql.DB, log *logrus.Logger) (*KV, error) {
	if db == nil {
		return nil, errNilDB
	}
	if log == nil {
		log = logrus.New()
	}
	return &KV{db: db, log: log, now: time.Now}, nil
}

// Get decodes the stored value for key into out and reports whether a
// usable value was found. On a missing key or decode failure the caller
// keeps its default.
func (kv *KV) Get(key string, out any) bool {
	var raw string
	err := kv.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			kv.log.WithError(err).WithField("key", key).Error("storage read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		kv.log.WithError(err).WithField("key", key).Error("storage decode failed")
		return false
	}
	return true
}

// Set stores the JSON encoding of v under key.
func (kv *KV) Set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		kv.log.WithError(err).WithField("key", key).Error("storage encode failed")
		return
	}
	_, err = kv.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), kv.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		kv.log.WithError(err).WithField("key", key).Error("storage write failed")
	}
}

// Remove deletes the value stored under key.
func (kv *KV) Remove(key string) {
	if _, err := kv.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		kv.log.WithError(err).WithField("key", key).Error("storage delete failed")
	}
}

// Clear removes every known application key.
func (kv *KV) Clear() {
	for _, key := range []string{KeyTasks, KeyCategories, KeyUIState} {
		kv.Remove(key)
	}
}
