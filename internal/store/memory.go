package store

// MemorySlot is a map-backed Slot. It does not survive the process.
type MemorySlot struct {
	values map[string][]byte
	// SetErr, when non-nil, is returned by every Set call.
	SetErr error
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: map[string][]byte{}}
}

// Get returns a copy of the stored value.
func (s *MemorySlot) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok || len(value) == 0 {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value.
func (s *MemorySlot) Set(key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (s *MemorySlot) Close() error { return nil }
