package history

import (
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hibeam-dev/chaski_client/internal/event"
	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/util"
	"github.com/hibeam-dev/chaski_client/pkg/errors"
)

// Record is one persisted event delivery.
type Record struct {
	ID        int64
	AttemptID string
	At        time.Time
	Kind      event.Kind
	Name      string
	IsError   bool
	Detail    string
}

// Store keeps a durable history of delivered events. It implements
// event.Sink, so it can sit directly behind the session listener; the mutex
// serializes concurrent deliveries.
type Store struct {
	db *sql.DB

	mu        sync.Mutex
	attemptID string
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	attempt_id TEXT NOT NULL,
	at         TEXT NOT NULL,
	kind       INTEGER NOT NULL,
	name       TEXT NOT NULL,
	is_error   INTEGER NOT NULL,
	detail     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS events_attempt_idx ON events(attempt_id);
`

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapWithBase(errors.ErrHistoryStore, "open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithBase(errors.ErrHistoryStore, "create schema", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BeginAttempt tags subsequent recordings with the attempt identifier.
func (s *Store) BeginAttempt(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attemptID = attemptID
}

// AddEvent records the event. Sink deliveries must not fail, so storage
// errors are logged and swallowed.
func (s *Store) AddEvent(ev *event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO events(attempt_id, at, kind, name, is_error, detail) VALUES(?, ?, ?, ?, ?, ?)`,
		s.attemptID,
		time.Now().UTC().Format(time.RFC3339Nano),
		int(ev.Kind()),
		ev.Name(),
		ev.IsError(),
		ev.Render(),
	)
	if err != nil {
		util.LogError(i18n.T("history_record_error", map[string]any{"Error": err}), err, nil)
	}
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(n int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, attempt_id, at, kind, name, is_error, detail FROM events ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, errors.WrapWithBase(errors.ErrHistoryStore, "query recent", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []Record
	for rows.Next() {
		var rec Record
		var at string
		var kind int
		if err := rows.Scan(&rec.ID, &rec.AttemptID, &at, &kind, &rec.Name, &rec.IsError, &rec.Detail); err != nil {
			return nil, errors.WrapWithBase(errors.ErrHistoryStore, "scan record", err)
		}
		rec.Kind = event.Kind(kind)
		if parsed, err := time.Parse(time.RFC3339Nano, at); err == nil {
			rec.At = parsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithBase(errors.ErrHistoryStore, "iterate records", err)
	}

	return records, nil
}

// Prune drops everything but the newest keep records. keep == 0 disables
// pruning.
func (s *Store) Prune(keep int) error {
	if keep <= 0 {
		return nil
	}

	_, err := s.db.Exec(
		`DELETE FROM events WHERE id NOT IN (SELECT id FROM events ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return errors.WrapWithBase(errors.ErrHistoryStore, "prune", err)
	}
	return nil
}

var _ event.Sink = (*Store)(nil)
