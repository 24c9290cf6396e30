// Package history maintains a bounded, most-recent-first list of hex
// color strings with cursor-based navigation and flat-file
// persistence.
package history

// MaxEntries is the maximum number of colors kept.
const MaxEntries = 200

// Store holds previously confirmed colors, newest first, plus a
// navigation cursor. Cursor -1 means "not navigating".
type Store struct {
	entries []string
	max     int
	cursor  int
}

// New creates a store with the given capacity. A non-positive max
// falls back to MaxEntries.
func New(max int) *Store {
	if max <= 0 {
		max = MaxEntries
	}
	return &Store{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Insert prepends hex unless it equals the newest entry. Older
// duplicates are kept. The store is truncated to its capacity.
func (s *Store) Insert(hex string) {
	if len(s.entries) > 0 && s.entries[0] == hex {
		return
	}
	s.entries = append([]string{hex}, s.entries...)
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
}

// Replace swaps in a whole new entry list (newest first), truncated
// to capacity. The cursor is reset.
func (s *Store) Replace(entries []string) {
	if len(entries) > s.max {
		entries = entries[:s.max]
	}
	s.entries = append(s.entries[:0:0], entries...)
	s.cursor = -1
}

// Clear empties the store and resets the cursor.
func (s *Store) Clear() {
	s.entries = s.entries[:0]
	s.cursor = -1
}

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of the stored entries, newest first.
func (s *Store) Entries() []string {
	return append([]string(nil), s.entries...)
}

// At returns the entry at index i (0 = newest).
func (s *Store) At(i int) (string, bool) {
	if i < 0 || i >= len(s.entries) {
		return "", false
	}
	return s.entries[i], true
}

// Cursor returns the navigation index, or -1 when not navigating.
func (s *Store) Cursor() int { return s.cursor }

// ResetCursor leaves navigation mode without touching entries.
func (s *Store) ResetCursor() { s.cursor = -1 }

// Older moves the cursor one step toward older entries, clamped at
// the oldest, and returns the selected entry. Starting from the
// not-navigating state selects the newest entry.
func (s *Store) Older() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	if s.cursor == -1 {
		s.cursor = 0
	} else if s.cursor < len(s.entries)-1 {
		s.cursor++
	}
	return s.entries[s.cursor], true
}

// Newer moves the cursor one step toward newer entries. Stepping past
// the newest entry leaves navigation mode and returns ("", false).
func (s *Store) Newer() (string, bool) {
	if len(s.entries) == 0 || s.cursor == -1 {
		return "", false
	}
	if s.cursor == 0 {
		s.cursor = -1
		return "", false
	}
	s.cursor--
	return s.entries[s.cursor], true
}
