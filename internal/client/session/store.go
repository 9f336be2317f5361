// Package session persists the local proof that a login happened: a single
// record with a creation timestamp, the subject id, and an integrity tag.
//
// The tag is deliberately non-cryptographic. It exists to make casual edits
// of the stored record detectable (say, bumping the timestamp to stretch the
// 24h window), not to resist an attacker who can read the client code. Do
// not swap in a real MAC without revisiting that threat model.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/chenjq/photofolio/internal/client/repositories/metadata"
	"github.com/chenjq/photofolio/internal/logging"
)

const (
	// Key is the fixed metadata key holding the sole session record.
	Key = "auth_session"

	// Duration is the hard session lifetime.
	Duration = 24 * time.Hour

	// freshWindow absorbs clock/propagation jitter right after login:
	// a record younger than this is never reported expired.
	freshWindow = 10 * time.Second
)

// Record is the persisted session entry. JSON field names match the record
// format the web client wrote, so a db carried over from it stays readable.
type Record struct {
	CreatedAt    int64  `json:"timestamp"` // milliseconds since epoch
	SubjectID    string `json:"uid"`
	IntegrityTag string `json:"hash"`
}

// Store owns the persisted session record. No other component writes the
// underlying metadata key.
type Store struct {
	repo        metadata.Repository
	fingerprint string
	log         logging.Logger
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, fingerprint: Fingerprint(), log: log}
}

// Fingerprint identifies the client environment the record was written in.
// It folds into the integrity tag so a record copied between machines reads
// as tampered.
func Fingerprint() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return host + "/" + runtime.GOOS + "/" + runtime.GOARCH
}

// Write stores a fresh record for subjectID, replacing any prior entry.
func (s *Store) Write(ctx context.Context, subjectID string) error {
	now := time.Now().UnixMilli()
	rec := Record{
		CreatedAt:    now,
		SubjectID:    subjectID,
		IntegrityTag: s.tag(now, subjectID),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, Key, b)
}

// Read loads and validates the persisted record. It returns (nil, nil) when
// the record is absent, malformed, or fails the integrity check; a failed
// check also clears the entry so the bad record cannot be retried.
func (s *Store) Read(ctx context.Context) (*Record, error) {
	raw, err := s.repo.Get(ctx, Key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		_ = s.Clear(ctx)
		return nil, nil
	}
	if rec.CreatedAt == 0 || rec.SubjectID == "" || rec.IntegrityTag == "" {
		return nil, nil
	}

	if rec.IntegrityTag != s.tag(rec.CreatedAt, rec.SubjectID) {
		s.log.Warn(ctx, "session record tampered, clearing session")
		_ = s.Clear(ctx)
		return nil, nil
	}

	return &rec, nil
}

// Clear removes the persisted record. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, Key)
}

// IsExpired reports whether the session has passed its lifetime as of now.
// An absent record counts as expired; a record inside the fresh window never
// does, regardless of the hard bound.
func (s *Store) IsExpired(ctx context.Context, now time.Time) bool {
	rec, err := s.Read(ctx)
	if err != nil || rec == nil {
		return true
	}

	elapsed := now.Sub(time.UnixMilli(rec.CreatedAt))
	if elapsed < freshWindow {
		return false
	}
	return elapsed >= Duration
}

// Remaining returns how much lifetime the session has left as of now,
// or 0 when no valid record exists.
func (s *Store) Remaining(ctx context.Context, now time.Time) time.Duration {
	rec, err := s.Read(ctx)
	if err != nil || rec == nil {
		return 0
	}

	remaining := Duration - now.Sub(time.UnixMilli(rec.CreatedAt))
	if remaining < 0 {
		return 0
	}
	return remaining
}

// tag mixes createdAt, subjectID and the environment fingerprint with the
// classic 31-hash folded to int32, rendered in base36.
func (s *Store) tag(createdAt int64, subjectID string) string {
	data := fmt.Sprintf("%d-%s-%s", createdAt, subjectID, s.fingerprint)
	var h int32
	for i := 0; i < len(data); i++ {
		h = (h << 5) - h + int32(data[i])
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
