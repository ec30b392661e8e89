// Package sessionstore persists captured-and-decoded CMDU sessions to
// disk, so the CLI's replay command can reopen a past capture without
// re-sniffing the wire.
//
// This is deliberately not topology storage: a Session is a recording
// of raw frames plus what this engine decoded them as, not a cache of
// discovered neighbors or link metrics (spec Non-goals exclude
// persisting discovered topology).
//
// Grounded on the teacher's pkg/storage.Storage: same bbolt-bucket,
// JSON-record, auto-incrementing-ID shape, generalized from run
// summaries to capture sessions.
package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const sessionBucket = "sessions"

// Store wraps a BoltDB instance for persisting capture sessions.
type Store struct {
	db *bbolt.DB
}

// Frame is one raw Ethernet frame captured as part of a session.
type Frame struct {
	CapturedAt time.Time `json:"captured_at"`
	Data       []byte    `json:"data"`
}

// Session records one capture run: the interface it was taken on, the
// raw frames seen, and a summary of what this engine decoded from
// them, for display without re-decoding.
type Session struct {
	ID          uint64    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	Interface   string    `json:"interface"`
	Frames      []Frame   `json:"frames"`
	CMDUCount   int       `json:"cmdu_count"`
	LLDPCount   int       `json:"lldp_count"`
	DecodeError string    `json:"decode_error,omitempty"`
}

// Open opens (or creates) the session database at path. Passing
// "disabled" or "" returns an error, the same sentinel behavior the
// teacher's Storage.Open uses so callers can treat persistence as
// optional without a separate enabled flag.
func Open(path string) (*Store, error) {
	if strings.EqualFold(path, "disabled") || path == "" {
		return nil, errors.New("sessionstore: disabled")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sessionstore: creating directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("sessionstore: opening %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sessionstore: creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add stores sess, assigning it the next sequence ID and returning it.
func (s *Store) Add(sess Session) (uint64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("sessionstore: store not open")
	}

	var id uint64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		sess.ID = id

		data, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
	return id, err
}

// Get returns the session stored under id.
func (s *Store) Get(id uint64) (Session, error) {
	if s == nil || s.db == nil {
		return Session{}, errors.New("sessionstore: store not open")
	}

	var sess Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(sessionBucket)).Get(itob(id))
		if v == nil {
			return fmt.Errorf("sessionstore: no session with id %d", id)
		}
		return json.Unmarshal(v, &sess)
	})
	return sess, err
}

// List returns the most recent sessions, newest first, up to limit (0
// means the default of 20).
func (s *Store) List(limit int) ([]Session, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sessionstore: store not open")
	}
	if limit <= 0 {
		limit = 20
	}

	sessions := make([]Session, 0, limit)
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(sessionBucket)).Cursor()
		for k, v := c.Last(); k != nil && len(sessions) < limit; k, v = c.Prev() {
			var sess Session
			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}
			sessions = append(sessions, sess)
		}
		return nil
	})
	return sessions, err
}

func itob(v uint64) []byte {
	var b [8]byte
	for i := uint(0); i < 8; i++ {
		b[7-i] = byte(v >> (i * 8))
	}
	return b[:]
}
