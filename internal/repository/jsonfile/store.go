// Package jsonfile implements the repository against two local JSON
// documents: the rotation state and the admin configuration. Every
// mutation is a full read-modify-write of the in-memory document
// followed by a flush to disk, serialized by a single mutex.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"duty-rotation-service/config"
	"duty-rotation-service/internal/entities"

	"go.uber.org/zap"
)

// Store wraps the two documents and their flush paths.
type Store struct {
	log *zap.SugaredLogger
	cfg config.StorageConfig

	mu       sync.Mutex
	state    document
	settings settingsDoc
}

// New creates a jsonfile repository instance.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		log: log.Named("repo.jsonfile"),
		cfg: cfg.Storage,
	}
}

// OnStart loads both documents, creating them with defaults when absent.
func (s *Store) OnStart(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := loadDocument(s.cfg.DataFile, &s.state, defaultDocument)
	if err != nil {
		return fmt.Errorf("load state document: %w: %v", entities.ErrPersistence, err)
	}
	s.state.migrate()
	if created {
		if err := writeDocument(s.cfg.DataFile, s.state); err != nil {
			return fmt.Errorf("init state document: %w: %v", entities.ErrPersistence, err)
		}
	}

	created, err = loadDocument(s.cfg.ConfigFile, &s.settings, defaultSettings)
	if err != nil {
		return fmt.Errorf("load config document: %w: %v", entities.ErrPersistence, err)
	}
	s.settings.migrate()
	if created {
		if err := writeDocument(s.cfg.ConfigFile, s.settings); err != nil {
			return fmt.Errorf("init config document: %w: %v", entities.ErrPersistence, err)
		}
	}

	s.log.Infow("jsonfile ready",
		"data_file", s.cfg.DataFile,
		"config_file", s.cfg.ConfigFile,
		"members", len(s.state.Users),
		"admins", len(s.settings.Admins),
	)
	return nil
}

// OnStop is a no-op: every mutation flushes before returning.
func (s *Store) OnStop(_ context.Context) error { return nil }

// mutate runs fn on the state document under the lock and flushes the
// result. On any failure the in-memory document is rolled back.
func (s *Store) mutate(op string, fn func(d *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&s.state); err != nil {
		s.state = snapshot
		return err
	}
	if err := writeDocument(s.cfg.DataFile, s.state); err != nil {
		s.state = snapshot
		s.log.Errorw("failed to flush state", "op", op, "error", err)
		return fmt.Errorf("%s: %w: %v", op, entities.ErrPersistence, err)
	}
	return nil
}

// UpsertMember registers a member or re-adds an existing one to the
// availability pool. Re-joining never duplicates a roster entry.
func (s *Store) UpsertMember(_ context.Context, m entities.Member) (bool, error) {
	var created bool
	err := s.mutate("upsert member", func(d *document) error {
		for _, u := range d.Users {
			if u.ID == m.ID {
				if indexByID(d.AvailableUsers, m.ID) < 0 {
					d.AvailableUsers = append(d.AvailableUsers, u)
				}
				return nil
			}
		}
		doc := memberDoc{
			ID:         m.ID,
			Username:   m.Username,
			FirstName:  m.FirstName,
			JoinedDate: time.Now().UTC(),
		}
		d.Users = append(d.Users, doc)
		d.AvailableUsers = append(d.AvailableUsers, doc)
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if created {
		s.log.Infow("member joined", "member_id", m.ID)
	}
	return created, nil
}

// RemoveMember deletes the identifier from all three member lists.
// Unknown identifiers are a no-op, not an error.
func (s *Store) RemoveMember(_ context.Context, id int64) error {
	return s.mutate("remove member", func(d *document) error {
		d.Users = removeByID(d.Users, id)
		d.AvailableUsers = removeByID(d.AvailableUsers, id)
		d.CurrentDuty = removeByID(d.CurrentDuty, id)
		return nil
	})
}

// RenameMember updates the display name in the roster, the availability
// pool and the current duty. History snapshots keep the old name.
func (s *Store) RenameMember(_ context.Context, id int64, firstName string) (*entities.Member, error) {
	var renamed entities.Member
	err := s.mutate("rename member", func(d *document) error {
		i := indexByID(d.Users, id)
		if i < 0 {
			return entities.ErrMemberNotFound
		}
		for _, list := range [][]memberDoc{d.Users, d.AvailableUsers, d.CurrentDuty} {
			for j := range list {
				if list[j].ID == id {
					list[j].FirstName = firstName
				}
			}
		}
		renamed = d.Users[i].toEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &renamed, nil
}

// GetMember returns a roster member by identifier.
func (s *Store) GetMember(_ context.Context, id int64) (*entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.state.Users, id)
	if i < 0 {
		return nil, entities.ErrMemberNotFound
	}
	m := s.state.Users[i].toEntity()
	return &m, nil
}

// ListMembers returns the full roster in insertion order.
func (s *Store) ListMembers(_ context.Context) ([]entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toEntities(s.state.Users), nil
}

// DrawDuty performs the without-replacement draw: refill the pool from
// the full roster when it is empty, sample up to count members, remove
// them from the pool, replace current duty, advance the schedule and
// append a history snapshot.
func (s *Store) DrawDuty(_ context.Context, count int) ([]entities.Member, error) {
	var selected []memberDoc
	err := s.mutate("draw duty", func(d *document) error {
		if len(d.Users) == 0 {
			return entities.ErrEmptyRoster
		}
		if len(d.AvailableUsers) == 0 {
			d.AvailableUsers = append([]memberDoc(nil), d.Users...)
		}

		n := count
		if n > len(d.AvailableUsers) {
			n = len(d.AvailableUsers)
		}
		selected = make([]memberDoc, 0, n)
		taken := make(map[int64]struct{}, n)
		for _, i := range rand.Perm(len(d.AvailableUsers))[:n] {
			selected = append(selected, d.AvailableUsers[i])
			taken[d.AvailableUsers[i].ID] = struct{}{}
		}

		remaining := make([]memberDoc, 0, len(d.AvailableUsers)-n)
		for _, u := range d.AvailableUsers {
			if _, ok := taken[u.ID]; !ok {
				remaining = append(remaining, u)
			}
		}
		d.AvailableUsers = remaining
		d.CurrentDuty = append([]memberDoc(nil), selected...)

		now := time.Now().UTC()
		next := now.Add(time.Duration(s.settings.DutyDurationDays) * 24 * time.Hour)
		d.NextDutyDate = &next
		d.DutyHistory = append(d.DutyHistory, historyDoc{
			Date:     now,
			Officers: append([]memberDoc(nil), selected...),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Infow("duty drawn", "members", memberIDs(selected))
	return toEntities(selected), nil
}

// SetDuty replaces current duty with the resolved members and appends a
// history snapshot. The availability pool is deliberately untouched: a
// manual assignment is not a pool consumption event.
func (s *Store) SetDuty(_ context.Context, memberIDs []int64) ([]entities.Member, error) {
	var resolved []memberDoc
	err := s.mutate("set duty", func(d *document) error {
		resolved = make([]memberDoc, 0, len(memberIDs))
		for _, id := range memberIDs {
			i := indexByID(d.Users, id)
			if i < 0 {
				return fmt.Errorf("%w: id %d", entities.ErrMemberNotFound, id)
			}
			resolved = append(resolved, d.Users[i])
		}
		d.CurrentDuty = append([]memberDoc(nil), resolved...)
		d.DutyHistory = append(d.DutyHistory, historyDoc{
			Date:     time.Now().UTC(),
			Officers: append([]memberDoc(nil), resolved...),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEntities(resolved), nil
}

// CurrentDuty returns the active shift and whole days until rotation.
func (s *Store) CurrentDuty(_ context.Context) (entities.DutyStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := entities.DutyStatus{Members: toEntities(s.state.CurrentDuty)}
	if s.state.NextDutyDate != nil {
		next := *s.state.NextDutyDate
		days := daysRemaining(next, time.Now().UTC())
		status.NextDutyAt = &next
		status.DaysRemaining = &days
	}
	return status, nil
}

// History returns past assignments newest first; limit <= 0 returns all.
func (s *Store) History(_ context.Context, limit int) ([]entities.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.state.DutyHistory)
	if limit <= 0 || limit > n {
		limit = n
	}
	entries := make([]entities.HistoryEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		h := s.state.DutyHistory[i]
		entries = append(entries, entities.HistoryEntry{
			Date:     h.Date,
			Officers: toEntities(h.Officers),
		})
	}
	return entries, nil
}

// Settings returns the admin configuration.
func (s *Store) Settings(_ context.Context) (entities.AdminSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entities.AdminSettings{
		Admins:           append([]int64(nil), s.settings.Admins...),
		DutyDurationDays: s.settings.DutyDurationDays,
	}, nil
}

// SetDutyDuration updates the rotation interval in the config document.
func (s *Store) SetDutyDuration(_ context.Context, days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.settings.DutyDurationDays
	s.settings.DutyDurationDays = days
	if err := writeDocument(s.cfg.ConfigFile, s.settings); err != nil {
		s.settings.DutyDurationDays = prev
		return fmt.Errorf("set duty duration: %w: %v", entities.ErrPersistence, err)
	}
	s.log.Infow("duty duration updated", "days", days)
	return nil
}

// daysRemaining counts whole days until next, rounding partial days up
// and clamping at zero once the deadline passed.
func daysRemaining(next, now time.Time) int {
	until := next.Sub(now)
	if until <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int((until + day - 1) / day)
}

func indexByID(docs []memberDoc, id int64) int {
	for i, d := range docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func removeByID(docs []memberDoc, id int64) []memberDoc {
	out := docs[:0]
	for _, d := range docs {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

func memberIDs(docs []memberDoc) []int64 {
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

// loadDocument reads path into v; when the file does not exist, v is
// set to its default and created=true is returned so the caller can
// persist the initial document.
func loadDocument[T any](path string, v *T, def func() T) (created bool, err error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		*v = def()
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return false, nil
}

// writeDocument flushes v to path atomically via a temp file rename.
func writeDocument(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
