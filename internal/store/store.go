// internal/store/store.go
//
// The form state store owns the one draft that exists per user. It is
// constructed with an explicit Slot and is the only thing that reads or
// writes it: Load once at startup, Persist after every mutation.

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrea/submission-builder/internal/draft"
)

var (
	// ErrMalformedState marks a stored blob that does not decode to a valid draft.
	ErrMalformedState = errors.New("store: malformed state")
	// ErrPersistFailed marks a write that did not reach the slot. The
	// in-memory draft still holds the mutation.
	ErrPersistFailed = errors.New("store: persist failed")
)

// LoadStatus classifies the outcome of Load.
type LoadStatus int

const (
	// LoadEmpty means nothing was stored; defaults are in use.
	LoadEmpty LoadStatus = iota
	// LoadRestored means the stored draft replaced the defaults.
	LoadRestored
	// LoadCorrupt means a stored value existed but was unusable; defaults are in use.
	LoadCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case LoadEmpty:
		return "empty"
	case LoadRestored:
		return "restored"
	case LoadCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult reports what Load found. Err is set only for LoadCorrupt.
type LoadResult struct {
	Status LoadStatus
	Err    error
}

// Store holds the current draft and mirrors it into a Slot.
type Store struct {
	slot       Slot
	key        string
	logger     *zap.Logger
	draft      draft.Draft
	persistErr error
	// unreadable is the blob a corrupt Load found; it is copied to
	// BackupKey before the first overwrite.
	unreadable []byte
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithKey overrides the slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a store holding the default draft. Call Load to restore a
// previous session.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		key:    DefaultKey,
		logger: zap.NewNop(),
		draft:  draft.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Key returns the slot key the draft is stored under.
func (s *Store) Key() string {
	return s.key
}

// BackupKey is where an unreadable blob is kept once the draft is next saved.
func (s *Store) BackupKey() string {
	return s.key + BackupSuffix
}

// Load reads the slot and, when it holds a valid draft, replaces the current
// draft wholesale. Anything else keeps the defaults.
func (s *Store) Load() LoadResult {
	data, err := s.slot.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			s.logger.Debug("no stored draft", zap.String("key", s.key))
			return LoadResult{Status: LoadEmpty}
		}
		return s.corrupt(err)
	}
	restored, err := Decode(data)
	if err != nil {
		s.unreadable = append([]byte(nil), data...)
		return s.corrupt(err)
	}
	s.unreadable = nil
	s.draft = restored
	s.logger.Info("draft restored", zap.String("key", s.key))
	return LoadResult{Status: LoadRestored}
}

func (s *Store) corrupt(err error) LoadResult {
	if !errors.Is(err, ErrMalformedState) {
		err = fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	s.logger.Warn("ignoring stored draft", zap.String("key", s.key), zap.Error(err))
	return LoadResult{Status: LoadCorrupt, Err: err}
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() draft.Draft {
	return s.draft.Clone()
}

// Update replaces one scalar field and persists. A rejected value leaves the
// draft unchanged and writes nothing.
func (s *Store) Update(field draft.Field, value string) error {
	next, err := s.draft.With(field, value)
	if err != nil {
		return err
	}
	s.draft = next
	return s.Persist()
}

// TogglePrincipleConcern removes concern when selected, appends it otherwise,
// then persists.
func (s *Store) TogglePrincipleConcern(concern string) error {
	next, err := s.draft.Toggle(concern)
	if err != nil {
		return err
	}
	s.draft = next
	return s.Persist()
}

// Persist writes the full draft to the slot. A failure is remembered until
// the next successful write so the UI can keep warning about it.
func (s *Store) Persist() error {
	if err := s.backupUnreadable(); err != nil {
		s.persistErr = fmt.Errorf("%w: keep unreadable draft: %w", ErrPersistFailed, err)
		s.logger.Warn("draft not saved", zap.String("key", s.key), zap.Error(err))
		return s.persistErr
	}
	data, err := Encode(s.draft)
	if err == nil {
		err = s.slot.Set(s.key, data)
	}
	if err != nil {
		s.persistErr = fmt.Errorf("%w: %w", ErrPersistFailed, err)
		s.logger.Warn("draft not saved", zap.String("key", s.key), zap.Error(err))
		return s.persistErr
	}
	if s.persistErr != nil {
		s.logger.Info("draft saved after earlier failure", zap.String("key", s.key))
	}
	s.persistErr = nil
	return nil
}

func (s *Store) backupUnreadable() error {
	if s.unreadable == nil {
		return nil
	}
	if err := s.slot.Set(s.BackupKey(), s.unreadable); err != nil {
		return err
	}
	s.logger.Warn("unreadable draft moved aside",
		zap.String("key", s.key),
		zap.String("backup", s.BackupKey()),
	)
	s.unreadable = nil
	return nil
}

// PersistErr returns the most recent unresolved persist failure.
func (s *Store) PersistErr() error {
	return s.persistErr
}

// Close releases the slot.
func (s *Store) Close() error {
	return s.slot.Close()
}

// Encode serializes a draft into the slot blob format.
func Encode(d draft.Draft) ([]byte, error) {
	if d.PrinciplesConcerns == nil {
		d.PrinciplesConcerns = []string{}
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: encode draft: %w", err)
	}
	return data, nil
}

// Decode parses a slot blob. Keys absent from the blob keep their defaults;
// a blob that is not a JSON object or breaks a draft invariant fails with
// ErrMalformedState.
func Decode(data []byte) (draft.Draft, error) {
	d := draft.New()
	if err := json.Unmarshal(data, &d); err != nil {
		return draft.Draft{}, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	if d.SubmissionType == "" {
		d.SubmissionType = draft.SubmissionPersonal
	}
	if d.PrinciplesConcerns == nil {
		d.PrinciplesConcerns = []string{}
	}
	if err := d.Validate(); err != nil {
		return draft.Draft{}, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	return d, nil
}
