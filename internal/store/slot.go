package store

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultKey names the slot the draft lives in.
const DefaultKey = "regulatorySubmission"

// BackupSuffix is appended to the key to hold a draft that failed to load.
const BackupSuffix = ".corrupt"

// Storage backends selectable from config.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrSlotEmpty is returned by Slot.Get when nothing has been stored under a key.
var ErrSlotEmpty = errors.New("store: slot empty")

// Slot is durable key/value storage holding whole serialized values. Set
// overwrites; the last write wins.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// OpenSlot opens the backend named by config under stateDir.
func OpenSlot(backend, stateDir string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileSlot(stateDir), nil
	case BackendSQLite:
		return OpenSQLiteSlot(SQLitePath(stateDir))
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}
